// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by Load when the template file does not exist.
	ErrNotFound = errors.New("header template not found")

	// ErrMalformed is returned by Block.Strip when content starts with the
	// header text but not with the complete header block.
	ErrMalformed = errors.New("malformed header")

	// ErrInvalidConfig marks configuration that can't produce a usable
	// header or file filter.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FileError records a failed filesystem operation on a single path.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string { return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err) }
func (e *FileError) Unwrap() error { return e.Err }
