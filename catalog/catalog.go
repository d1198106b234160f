// Package catalog lists the posture tools found in a directory.
//
// Each document is loaded in info-only mode, which is what a tool picker
// needs: the display name and the icon.
package catalog

import (
	"context"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/posture"
	"github.com/tsawler/posture/format"
)

// Entry describes one tool document.
type Entry struct {
	Path string
	Name string
	Icon image.Image // nil when the document has none

	// Err is the fault that stopped loading the document, if any. Name
	// and Icon hold what was read before it.
	Err error
}

// Options configures a scan. The zero value scans the top directory only
// with one worker per CPU and the package logger of posture.
type Options struct {
	Recursive   bool
	Concurrency int
	Logger      *slog.Logger
}

func (o Options) workers() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

// Scan loads every posture tool document under dir. Files that are not
// posture tools are left out. Entries are ordered by path.
//
// Documents that fail to load are still listed, with Err set. Scan itself
// fails only when dir cannot be read or ctx is done.
func Scan(ctx context.Context, dir string, opts Options) ([]Entry, error) {
	paths, err := candidates(dir, opts.Recursive)
	if err != nil {
		return nil, err
	}

	loader := posture.Open("").InfoOnly()
	if opts.Logger != nil {
		loader = loader.WithLogger(opts.Logger)
	}

	entries := make([]Entry, len(paths))
	found := make([]bool, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry, ok := load(loader, path)
			entries[i], found[i] = entry, ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := entries[:0]
	for i, e := range entries {
		if found[i] {
			out = append(out, e)
		}
	}
	return out, nil
}

// load reads one candidate. It reports false for files that are not
// posture tools.
func load(loader *posture.Loader, path string) (Entry, bool) {
	f, err := format.DetectFile(path)
	if err != nil {
		return Entry{Path: path, Err: err}, true
	}
	if f != format.Posture {
		return Entry{}, false
	}

	tpl, err := loader.File(path).Decode()
	return Entry{
		Path: path,
		Name: tpl.Name,
		Icon: tpl.Icon,
		Err:  err,
	}, true
}

// candidates returns the paths under dir that may hold a tool document,
// in lexical order.
func candidates(dir string, recursive bool) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if format.Detect(path) == format.XML {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	return paths, nil
}

// Lookup returns the entry whose Name is name, reading dir as Scan does.
func Lookup(ctx context.Context, dir, name string, opts Options) (Entry, error) {
	entries, err := Scan(ctx, dir, opts)
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("tool %q: %w", name, os.ErrNotExist)
}
