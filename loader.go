package posture

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/tsawler/posture/icon"
	"github.com/tsawler/posture/model"
	"github.com/tsawler/posture/reader"
)

// Loader provides a fluent interface for loading a tool document.
// Each configuration method returns a new Loader, so a configured Loader
// can be shared and reused.
type Loader struct {
	// Source (exactly one is set)
	filename string
	src      io.Reader

	// Configuration
	options LoadOptions
}

// clone creates a copy of the Loader with its own options.
func (l *Loader) clone() *Loader {
	return &Loader{
		filename: l.filename,
		src:      l.src,
		options:  l.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Loader instance)
// ============================================================================

// File returns a Loader with the same configuration reading filename.
//
// Example:
//
//	info := posture.Open("").InfoOnly()
//	for _, f := range files {
//	    tpl := info.File(f).Template()
//	}
func (l *Loader) File(filename string) *Loader {
	newLoader := l.clone()
	newLoader.filename = filename
	newLoader.src = nil
	return newLoader
}

// Mode selects the load mode.
func (l *Loader) Mode(m Mode) *Loader {
	newLoader := l.clone()
	newLoader.options.mode = m
	return newLoader
}

// Full builds the complete template. This is the default.
func (l *Loader) Full() *Loader {
	return l.Mode(Full)
}

// InfoOnly builds only the name and icon.
//
// Example:
//
//	info := posture.Open("tool.xml").InfoOnly().Template()
func (l *Loader) InfoOnly() *Loader {
	return l.Mode(InfoOnly)
}

// WithLogger sends this load's diagnostics to logger instead of the
// package logger.
func (l *Loader) WithLogger(logger *slog.Logger) *Loader {
	newLoader := l.clone()
	newLoader.options.logger = logger
	return newLoader
}

// WithIconDecoder replaces the image decoder used for the Icon section.
func (l *Loader) WithIconDecoder(dec icon.Decoder) *Loader {
	newLoader := l.clone()
	newLoader.options.icons = dec
	return newLoader
}

// MaxPoints sets the largest total PointCount accepted. Documents declaring
// more stop loading with ErrTooManyPoints. There is no limit by default;
// n <= 0 removes it again.
func (l *Loader) MaxPoints(n int) *Loader {
	newLoader := l.clone()
	newLoader.options.maxPoints = n
	return newLoader
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Template loads the document and returns the template. It never fails:
// faults are logged at error level and the template built up to the fault
// is returned. A document whose root is not a tool document yields an
// empty template.
func (l *Loader) Template() *model.Template {
	tpl, err := l.Decode()
	if err != nil {
		l.options.log().Error("parsing posture tool failed",
			"source", l.source(),
			"mode", l.options.mode.String(),
			"err", err)
	}
	return tpl
}

// Decode loads the document and returns the template together with the
// fault that stopped parsing, if any. The template is never nil; on error
// it holds everything parsed before the fault.
func (l *Loader) Decode() (*model.Template, error) {
	tpl := model.NewTemplate()

	r, err := l.openReader()
	if err != nil {
		return tpl, err
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			l.options.log().Debug("closing posture tool", "source", l.source(), "err", cerr)
		}
	}()

	p := &parser{
		r:       r,
		tpl:     tpl,
		log:     l.options.log().With("source", l.source()),
		options: l.options,
	}
	return tpl, p.parse()
}

// openReader opens the configured source.
func (l *Loader) openReader() (*reader.Reader, error) {
	if l.src != nil {
		return reader.New(l.src), nil
	}
	if l.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}
	return reader.Open(l.filename)
}

// source names the document in log records.
func (l *Loader) source() string {
	if l.filename != "" {
		return l.filename
	}
	return "stream"
}
