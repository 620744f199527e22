// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Licenser inserts or removes a license header at the top of source files.

It reads a header template (./NOTICE by default), prefixes every line of it
with a comment style ("//" by default) and a space, and adds a blank line
after it. Then it recursively walks a directory and prepends the header to
every file with a selected extension that doesn't already start with it.
Symbolic links are not followed, and files without an extension such as
Makefile are never touched.

With -remove, the header is stripped from every selected file that starts with
it instead. Run licenser -remove with the old template before inserting a new
one to update headers.

Files are rewritten in place without a backup, so run it on a tree under
version control. Use -dry to see what would change.

A file that can't be processed doesn't stop the run: the error is logged, the
rest of the tree is processed, and licenser exits with a non-zero status at
the end.

The walked directory may contain a .licenser.txtar file. This file is a txtar
archive and can contain the following files:

  - exclusions.json: A JSON array of slash-separated path suffixes, relative to
    the directory, that are never processed (e.g., ["vendor", "src/gen.rs"]).

Example:

	$ licenser -header LICENSE.header -e go,js -comment-style //
*/
package main

import (
	_ "embed"

	"go.astrophena.name/licenser/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
