// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/licenser/testutil"
)

func TestBuild(t *testing.T) {
	cases := map[string]struct {
		template     string
		commentStyle string
		want         string
		wantErr      error
	}{
		"single line": {
			template:     "Copyright 2024",
			commentStyle: "//",
			want:         "// Copyright 2024\n\n",
		},
		"trailing newline": {
			template:     "Copyright 2024\n",
			commentStyle: "//",
			want:         "// Copyright 2024\n\n",
		},
		"multiple lines": {
			template:     "SPDX-License-Identifier: MPL-2.0\nThis Source Code Form is subject to the terms\n",
			commentStyle: "#",
			want:         "# SPDX-License-Identifier: MPL-2.0\n# This Source Code Form is subject to the terms\n\n",
		},
		"CRLF": {
			template:     "one\r\ntwo\r\n",
			commentStyle: "--",
			want:         "-- one\n-- two\n\n",
		},
		"blank line inside": {
			template:     "one\n\ntwo",
			commentStyle: "//",
			want:         "// one\n// \n// two\n\n",
		},
		"empty comment style": {
			template: "Copyright 2024",
			wantErr:  ErrInvalidConfig,
		},
		"empty template": {
			template:     " \n\n",
			commentStyle: "//",
			wantErr:      ErrInvalidConfig,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Build(tc.template, tc.commentStyle)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Build() error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Build(): %v", err)
			}
			testutil.AssertEqual(t, string(got), tc.want)
		})
	}
}

func TestBuildDeterministic(t *testing.T) {
	a, err := Build("Copyright 2024\nAll rights reserved.", "//")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build("Copyright 2024\nAll rights reserved.", "//")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, a, b)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("ok", func(t *testing.T) {
		path := filepath.Join(dir, "NOTICE")
		if err := os.WriteFile(path, []byte("Copyright 2024\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		got, err := Load(path, "//")
		if err != nil {
			t.Fatalf("Load(): %v", err)
		}
		testutil.AssertEqual(t, string(got), "// Copyright 2024\n\n")
	})

	t.Run("not found", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing"), "//")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("Load() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		_, err := Load(dir, "//")
		var fe *FileError
		if !errors.As(err, &fe) {
			t.Fatalf("Load() error = %v, want *FileError", err)
		}
		testutil.AssertEqual(t, fe.Path, dir)
	})
}

func TestPresentIn(t *testing.T) {
	b := mustBuild(t, "Copyright 2024", "//")

	cases := map[string]struct {
		content string
		want    bool
	}{
		"full block":      {"// Copyright 2024\n\nfn main() {}\n", true},
		"only header":     {"// Copyright 2024", true},
		"single newline":  {"// Copyright 2024\nfn main() {}\n", true},
		"absent":          {"fn main() {}\n", false},
		"empty":           {"", false},
		"not at the top":  {"fn main() {}\n// Copyright 2024\n\n", false},
		"different text":  {"// Copyright 2023\n\n", false},
		"leading newline": {"\n// Copyright 2024\n\n", false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, b.PresentIn([]byte(tc.content)), tc.want)
		})
	}
}

func TestInsert(t *testing.T) {
	b := mustBuild(t, "Copyright 2024", "//")
	got := b.Insert([]byte("fn main() {}\n"))
	testutil.AssertEqual(t, string(got), "// Copyright 2024\n\nfn main() {}\n")
	testutil.AssertEqual(t, b.PresentIn(got), true)
}

func TestStrip(t *testing.T) {
	b := mustBuild(t, "Copyright 2024", "//")

	cases := map[string]struct {
		content string
		want    string
		wantErr error
	}{
		"present": {
			content: "// Copyright 2024\n\nfn main() {}\n",
			want:    "fn main() {}\n",
		},
		"only block": {
			content: "// Copyright 2024\n\n",
			want:    "",
		},
		"absent": {
			content: "fn main() {}\n",
			want:    "fn main() {}\n",
		},
		"truncated": {
			content: "// Copyright 2024",
			wantErr: ErrMalformed,
		},
		"missing separator": {
			content: "// Copyright 2024\nfn main() {}\n",
			wantErr: ErrMalformed,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := b.Strip([]byte(tc.content))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Strip() error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Strip(): %v", err)
			}
			testutil.AssertEqual(t, string(got), tc.want)
		})
	}
}

func TestStripInsertInverse(t *testing.T) {
	b := mustBuild(t, "SPDX-License-Identifier: ISC\n\nCopyright 2024", "#")

	for _, content := range []string{
		"",
		"\n",
		"#!/bin/sh\necho hi\n",
		"no trailing newline",
		"\n\n# starts with blank lines\n",
	} {
		got, err := b.Strip(b.Insert([]byte(content)))
		if err != nil {
			t.Fatalf("Strip(Insert(%q)): %v", content, err)
		}
		if diff := testutil.Diff(string(got), content); diff != "" {
			t.Errorf("Strip(Insert(%q)) mismatch (-got +want):\n%s", content, diff)
		}
	}
}

func TestLeadingWhitespaceCommentStyle(t *testing.T) {
	b := mustBuild(t, "Copyright 2024", " *")
	inserted := b.Insert([]byte("body\n"))
	testutil.AssertEqual(t, b.PresentIn(inserted), true)
}

func mustBuild(t *testing.T, template, commentStyle string) Block {
	t.Helper()
	b, err := Build(template, commentStyle)
	if err != nil {
		t.Fatalf("Build(%q, %q): %v", template, commentStyle, err)
	}
	return b
}
