// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"go.astrophena.name/licenser/cli"
	"go.astrophena.name/licenser/header"
	"go.astrophena.name/licenser/logger"
	"go.astrophena.name/licenser/tree"
)

const defaultHeader = "./NOTICE"

func main() { cli.Main(new(app)) }

type app struct {
	header       string
	dir          string
	extensions   string
	commentStyle string
	remove       bool
	dry          bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.header, "header", defaultHeader, "Path to the header template `file`.")
	fs.StringVar(&a.dir, "dir", ".", "`Directory` to apply the header to.")
	fs.StringVar(&a.extensions, "extensions", "rs", "Select files by comma-separated `extensions`, e.g. rs,js,kt.")
	fs.StringVar(&a.extensions, "e", "rs", "Shorthand for -extensions.")
	fs.StringVar(&a.commentStyle, "comment-style", "//", "Comment `prefix` put before each header line.")
	fs.StringVar(&a.commentStyle, "c", "//", "Shorthand for -comment-style.")
	fs.BoolVar(&a.remove, "remove", false, "Remove the header instead of inserting it. Run it first to update the header.")
	fs.BoolVar(&a.remove, "r", false, "Shorthand for -remove.")
	fs.BoolVar(&a.dry, "dry", false, "Print the files that would be changed, without making changes.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) > 0 {
		return fmt.Errorf("%w: unexpected arguments %q", cli.ErrInvalidArgs, env.Args)
	}

	exts, err := tree.ParseExtensions(a.extensions)
	if err != nil {
		return err
	}

	block, err := header.Load(a.header, a.commentStyle)
	if errors.Is(err, header.ErrNotFound) {
		return fmt.Errorf("%w (use the -header flag or create a %s file)", err, defaultHeader)
	}
	if err != nil {
		return err
	}

	cfg, err := loadConfig(a.dir)
	if err != nil {
		return err
	}

	mode := tree.Insert
	if a.remove {
		mode = tree.Remove
	}

	r, err := tree.Apply(ctx, tree.Options{
		Dir:        a.dir,
		Block:      block,
		Extensions: exts,
		Mode:       mode,
		Exclusions: cfg.exclusions,
		DryRun:     a.dry,
	})
	if r != nil {
		logger.Info(ctx, "done",
			slog.String("mode", mode.String()),
			slog.String("extensions", exts.String()),
			slog.Int("changed", len(r.Changed)),
			slog.Int("unchanged", r.Unchanged),
			slog.Int("excluded", r.Excluded),
			slog.Int("failed", len(r.Failed)),
		)
	}
	return err
}
