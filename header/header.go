// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package header builds comment-prefixed notice blocks and tests, inserts and
// strips them at the start of file contents.
package header

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode"
)

// Block is a rendered header: every template line prefixed with a comment
// style, followed by one blank line.
type Block []byte

// Load reads the template at path and renders it with [Build].
func Load(path, commentStyle string) (Block, error) {
	tmpl, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}
	return Build(string(tmpl), commentStyle)
}

// Build renders template as a header block. Each line becomes
// "{commentStyle} {line}\n" and a single "\n" is appended. Both LF and CRLF
// line endings are accepted.
func Build(template, commentStyle string) (Block, error) {
	if commentStyle == "" {
		return nil, fmt.Errorf("%w: empty comment style", ErrInvalidConfig)
	}
	if strings.TrimSpace(template) == "" {
		return nil, fmt.Errorf("%w: empty header template", ErrInvalidConfig)
	}

	var buf bytes.Buffer
	s := bufio.NewScanner(strings.NewReader(template))
	s.Buffer(nil, len(template)+1)
	for s.Scan() {
		fmt.Fprintf(&buf, "%s %s\n", commentStyle, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return Block(buf.Bytes()), nil
}

// Trimmed returns b without trailing whitespace. Content is considered to
// carry the header when it starts with these bytes.
//
// Leading whitespace is kept so that a comment style such as " *" still
// matches the block it produced.
func (b Block) Trimmed() []byte { return bytes.TrimRightFunc(b, unicode.IsSpace) }

// PresentIn reports whether content starts with the header.
func (b Block) PresentIn(content []byte) bool {
	return bytes.HasPrefix(content, b.Trimmed())
}

// Insert returns b followed by content. It does not check whether content
// already carries the header.
func (b Block) Insert(content []byte) []byte {
	out := make([]byte, 0, len(b)+len(content))
	out = append(out, b...)
	return append(out, content...)
}

// Strip removes the header from the start of content.
//
// If content does not carry the header it is returned as is. If it starts with
// the header text but the complete block (including the blank separator line)
// is not there, Strip returns ErrMalformed.
func (b Block) Strip(content []byte) ([]byte, error) {
	if !b.PresentIn(content) {
		return content, nil
	}
	rest, ok := bytes.CutPrefix(content, b)
	if !ok {
		return nil, fmt.Errorf("%w: expected %d header bytes, found %d matching", ErrMalformed, len(b), commonPrefix(b, content))
	}
	return rest, nil
}

func commonPrefix(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
