// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package clitest provides table-driven testing of [cli.App] implementations.
package clitest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"go.astrophena.name/licenser/cli"
)

// Case describes a single run of an application.
type Case[T cli.App] struct {
	// Args are the command-line arguments, without the program name.
	Args []string
	// Stdin is the standard input. Empty if nil.
	Stdin io.Reader
	// Env holds environment variables visible through cli.Env.Getenv.
	Env map[string]string

	// WantErr, if set, must match the returned error with errors.Is.
	WantErr error
	// WantErrType, if set, must match the returned error with errors.As.
	// It should be a value of the wanted error type, such as &MyError{}.
	WantErrType error
	// WantNothingPrinted requires both stdout and stderr to stay empty.
	WantNothingPrinted bool
	// WantInStdout and WantInStderr must be substrings of the output.
	WantInStdout string
	WantInStderr string

	// CheckFunc, if set, is called with the app after it ran.
	CheckFunc func(*testing.T, T)
}

// Run runs each case as a subtest against a fresh app returned by setup.
func Run[T cli.App](t *testing.T, setup func(*testing.T) T, cases map[string]Case[T]) {
	t.Helper()
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			app := setup(t)

			var stdout, stderr bytes.Buffer
			stdin := tc.Stdin
			if stdin == nil {
				stdin = strings.NewReader("")
			}
			env := &cli.Env{
				Args:   tc.Args,
				Getenv: func(key string) string { return tc.Env[key] },
				Stdin:  stdin,
				Stdout: &stdout,
				Stderr: &stderr,
			}

			err := cli.Run(cli.WithEnv(context.Background(), env), app)
			checkErr(t, err, tc.WantErr, tc.WantErrType)

			if tc.WantNothingPrinted && (stdout.Len() > 0 || stderr.Len() > 0) {
				t.Errorf("want nothing printed, got stdout %q and stderr %q", stdout.String(), stderr.String())
			}
			if tc.WantInStdout != "" && !strings.Contains(stdout.String(), tc.WantInStdout) {
				t.Errorf("stdout %q does not contain %q", stdout.String(), tc.WantInStdout)
			}
			if tc.WantInStderr != "" && !strings.Contains(stderr.String(), tc.WantInStderr) {
				t.Errorf("stderr %q does not contain %q", stderr.String(), tc.WantInStderr)
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
		})
	}
}

func checkErr(t *testing.T, err, want, wantType error) {
	t.Helper()
	switch {
	case want != nil:
		if !errors.Is(err, want) {
			t.Fatalf("want error %v, got %v", want, err)
		}
	case wantType != nil:
		target := reflect.New(reflect.TypeOf(wantType))
		if !errors.As(err, target.Interface()) {
			t.Fatalf("want error of type %T, got %v", wantType, err)
		}
	case err != nil:
		t.Fatalf("unexpected error: %v", err)
	}
}
