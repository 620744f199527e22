// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package tree

import (
	"fmt"
	"slices"
	"strings"

	"go.astrophena.name/licenser/header"
)

// ExtensionSet is a set of file extensions without the leading dot.
// Matching is case-sensitive.
type ExtensionSet map[string]struct{}

// NewExtensionSet builds an ExtensionSet. Surrounding spaces and a leading dot
// are removed from each extension and empty entries are dropped; if nothing
// remains, it returns an error wrapping [header.ErrInvalidConfig].
func NewExtensionSet(exts ...string) (ExtensionSet, error) {
	set := make(ExtensionSet)
	for _, ext := range exts {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" {
			continue
		}
		set[ext] = struct{}{}
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: no file extensions", header.ErrInvalidConfig)
	}
	return set, nil
}

// ParseExtensions splits a comma-separated list such as "rs,js,kt" and
// passes it to [NewExtensionSet].
func ParseExtensions(list string) (ExtensionSet, error) {
	return NewExtensionSet(strings.Split(list, ",")...)
}

// Has reports whether ext is in the set.
func (s ExtensionSet) Has(ext string) bool {
	_, ok := s[ext]
	return ok
}

// String returns the sorted, comma-separated extensions.
func (s ExtensionSet) String() string {
	exts := make([]string, 0, len(s))
	for ext := range s {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return strings.Join(exts, ",")
}

// extension returns the text after the last dot of a file name. Names without
// a dot, or whose only dot is the leading one, have no extension.
func extension(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}
	return name[i+1:], true
}
