// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package tree applies a header block to every matching file in a directory
// tree.
//
// Files are processed one at a time: read, checked for the header, and
// rewritten in place. Rewrites go through a temporary file that is renamed
// over the original, so a crash never leaves a truncated file behind. No
// backup is kept; run it on a tree under version control.
package tree

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"go.astrophena.name/licenser/header"
	"go.astrophena.name/licenser/logger"
)

// Mode selects what Apply does with each matching file.
type Mode int

const (
	// Insert prepends the header to files that don't start with it.
	Insert Mode = iota
	// Remove strips the header from files that start with it.
	Remove
)

func (m Mode) String() string {
	switch m {
	case Insert:
		return "insert"
	case Remove:
		return "remove"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Options configure Apply.
type Options struct {
	// Dir is the root of the walk. Defaults to ".".
	Dir string
	// Block is the header to insert or remove.
	Block header.Block
	// Extensions selects the files to process.
	Extensions ExtensionSet
	// Mode is Insert or Remove.
	Mode Mode
	// Exclusions are slash-separated path suffixes, relative to Dir, that are
	// never processed.
	// A suffix matches whole path elements only: "gen.rs" excludes
	// "src/gen.rs" but not "src/codegen.rs". Excluded directories are not
	// descended into.
	Exclusions []string
	// DryRun makes Apply report what it would change without writing.
	DryRun bool
}

// Report summarizes a run of Apply.
type Report struct {
	// Changed lists the files that were (or, in a dry run, would be)
	// rewritten, in walk order.
	Changed []string
	// Unchanged counts matching files that already were in the desired state.
	Unchanged int
	// Excluded counts paths skipped because of Options.Exclusions.
	Excluded int
	// Failed holds one *header.FileError per path that could not be
	// processed.
	Failed []error
}

// Apply walks opts.Dir and inserts or removes opts.Block in every regular file
// whose extension is in opts.Extensions. Symbolic links are not followed.
//
// Failures on individual files or subdirectories don't stop the walk; they are
// collected in the report and returned joined once the walk is done. An
// unreadable root, invalid options or a canceled context stop it immediately.
func Apply(ctx context.Context, opts Options) (*Report, error) {
	if len(opts.Block) == 0 {
		return nil, fmt.Errorf("%w: empty header block", header.ErrInvalidConfig)
	}
	if len(opts.Extensions) == 0 {
		return nil, fmt.Errorf("%w: no file extensions", header.ErrInvalidConfig)
	}
	if opts.Mode != Insert && opts.Mode != Remove {
		return nil, fmt.Errorf("%w: unknown mode %v", header.ErrInvalidConfig, opts.Mode)
	}
	root := opts.Dir
	if root == "" {
		root = "."
	}

	r := new(Report)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			ferr := &header.FileError{Op: "walk", Path: path, Err: err}
			if path == root {
				return ferr
			}
			r.fail(ctx, ferr)
			return nil
		}

		if path != root && opts.excluded(root, path) {
			logger.Debug(ctx, "excluded", slog.String("path", path))
			r.Excluded++
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			logger.Debug(ctx, "not a regular file", slog.String("path", path))
			return nil
		}
		ext, ok := extension(d.Name())
		if !ok || !opts.Extensions.Has(ext) {
			return nil
		}

		changed, err := opts.process(path)
		switch {
		case err != nil:
			r.fail(ctx, err)
		case changed:
			r.Changed = append(r.Changed, path)
			logger.Info(ctx, opts.verb(), slog.String("path", path))
		default:
			r.Unchanged++
			logger.Debug(ctx, "unchanged", slog.String("path", path))
		}
		return nil
	})
	if err != nil {
		return r, err
	}
	if len(r.Failed) > 0 {
		return r, fmt.Errorf("%d of %d files failed:\n%w", len(r.Failed), r.total(), errors.Join(r.Failed...))
	}
	return r, nil
}

func (o *Options) process(path string) (changed bool, err error) {
	fi, err := os.Stat(path)
	if err != nil {
		return false, &header.FileError{Op: "stat", Path: path, Err: err}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return false, &header.FileError{Op: "read", Path: path, Err: err}
	}

	var out []byte
	switch o.Mode {
	case Insert:
		if o.Block.PresentIn(content) {
			return false, nil
		}
		out = o.Block.Insert(content)
	case Remove:
		if !o.Block.PresentIn(content) {
			return false, nil
		}
		out, err = o.Block.Strip(content)
		if err != nil {
			return false, &header.FileError{Op: "strip", Path: path, Err: err}
		}
	}

	if o.DryRun {
		return true, nil
	}
	if err := atomic.WriteFile(path, bytes.NewReader(out)); err != nil {
		return false, &header.FileError{Op: "write", Path: path, Err: err}
	}
	if err := os.Chmod(path, fi.Mode().Perm()); err != nil {
		return true, &header.FileError{Op: "chmod", Path: path, Err: err}
	}
	return true, nil
}

func (o *Options) excluded(root, path string) bool {
	if rel, err := filepath.Rel(root, path); err == nil {
		path = rel
	}
	path = filepath.ToSlash(path)
	for _, ex := range o.Exclusions {
		ex = strings.Trim(ex, "/")
		if ex == "" {
			continue
		}
		if path == ex || strings.HasSuffix(path, "/"+ex) {
			return true
		}
	}
	return false
}

func (o *Options) verb() string {
	var s string
	switch o.Mode {
	case Insert:
		s = "inserted header"
	case Remove:
		s = "removed header"
	}
	if o.DryRun {
		s = "would have " + s
	}
	return s
}

func (r *Report) fail(ctx context.Context, err error) {
	logger.Error(ctx, "failed", slog.Any("err", err))
	r.Failed = append(r.Failed, err)
}

func (r *Report) total() int { return len(r.Changed) + r.Unchanged + len(r.Failed) }
