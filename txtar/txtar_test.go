// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package txtar

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestExtract(t *testing.T) {
	tempDir := t.TempDir()

	a := &Archive{
		Comment: []byte("# Test archive\n"),
		Files: []File{
			{Name: "file1.txt", Data: []byte("Content of file1\n")},
			{Name: "subdir/file2.txt", Data: []byte("Content of file2\n")},
		},
	}

	err := Extract(a, tempDir)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	verifyFile(t, filepath.Join(tempDir, "file1.txt"), "Content of file1\n")
	verifyFile(t, filepath.Join(tempDir, "subdir", "file2.txt"), "Content of file2\n")
}

func TestExtractRejectsEscapingNames(t *testing.T) {
	a := &Archive{Files: []File{{Name: "../evil.txt", Data: []byte("x")}}}
	if err := Extract(a, t.TempDir()); err == nil {
		t.Fatal("Extract succeeded, want error")
	}
}

func TestFromDir(t *testing.T) {
	tempDir := t.TempDir()
	createFile(t, filepath.Join(tempDir, "file1.txt"), "Content of file1\n")
	createFile(t, filepath.Join(tempDir, "sub", "file2.txt"), "Content of file2\n")

	a, err := FromDir(tempDir)
	if err != nil {
		t.Fatalf("FromDir failed: %v", err)
	}

	want := &Archive{
		Files: []File{
			{Name: "file1.txt", Data: []byte("Content of file1\n")},
			{Name: "sub/file2.txt", Data: []byte("Content of file2\n")},
		},
	}

	if len(a.Files) != len(want.Files) {
		t.Fatalf("Incorrect number of files in archive.\nGot: %d, Want: %d", len(a.Files), len(want.Files))
	}
	for i := range want.Files {
		if a.Files[i].Name != want.Files[i].Name || !bytes.Equal(a.Files[i].Data, want.Files[i].Data) {
			t.Errorf("file %d = %q, want %q", i, a.Files[i].Name, want.Files[i].Name)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	in := []byte("-- a.rs --\nfn main() {}\n-- b/c.txt --\nhello\n")
	dir := t.TempDir()
	if err := Extract(Parse(in), dir); err != nil {
		t.Fatal(err)
	}
	a, err := FromDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := Format(a); !bytes.Equal(got, in) {
		t.Fatalf("Format(FromDir()) = %q, want %q", got, in)
	}
}

func verifyFile(t *testing.T, path, wantContent string) {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	if string(content) != wantContent {
		t.Errorf("File content mismatch for %s.\nGot: %q, Want: %q", path, content, wantContent)
	}
}

func createFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
}
