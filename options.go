package posture

import (
	"log/slog"

	"github.com/tsawler/posture/icon"
)

// LoadOptions holds configuration for loading a tool document.
type LoadOptions struct {
	mode Mode

	// Collaborators
	logger *slog.Logger // nil means the package logger
	icons  icon.Decoder // nil means icon.StandardDecoder

	// Limits
	maxPoints int // 0 means no limit
}

// defaultOptions returns the default load options.
func defaultOptions() LoadOptions {
	return LoadOptions{
		mode:      Full,
		logger:    nil,
		icons:     nil,
		maxPoints: 0,
	}
}

// clone creates a copy of LoadOptions.
func (o LoadOptions) clone() LoadOptions {
	return LoadOptions{
		mode:      o.mode,
		logger:    o.logger,
		icons:     o.icons,
		maxPoints: o.maxPoints,
	}
}

// log returns the logger diagnostics go to.
func (o LoadOptions) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

// iconDecoder returns the decoder used for the Icon section.
func (o LoadOptions) iconDecoder() icon.Decoder {
	if o.icons != nil {
		return o.icons
	}
	return icon.StandardDecoder{}
}
