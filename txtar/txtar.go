// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package txtar extends [golang.org/x/tools/txtar] with helpers for moving
// archives to and from directories.
package txtar

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/tools/txtar"
)

// Archive is a collection of files.
type Archive = txtar.Archive

// File is a single file in an archive.
type File = txtar.File

// Parse parses the serialized form of an Archive.
func Parse(data []byte) *Archive { return txtar.Parse(data) }

// ParseFile parses the named file as an archive.
func ParseFile(file string) (*Archive, error) { return txtar.ParseFile(file) }

// Format returns the serialized form of an Archive.
func Format(a *Archive) []byte { return txtar.Format(a) }

// Extract writes the files of a into dir, creating directories as needed.
// File names must be local paths.
func Extract(a *Archive, dir string) error {
	for _, f := range a.Files {
		name := filepath.FromSlash(f.Name)
		if !filepath.IsLocal(name) {
			return fmt.Errorf("txtar: file name %q escapes the target directory", f.Name)
		}
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// FromDir builds an archive from the regular files under dir. File names are
// slash-separated and relative to dir.
func FromDir(dir string) (*Archive, error) {
	a := new(Archive)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		a.Files = append(a.Files, File{Name: filepath.ToSlash(rel), Data: data})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}
