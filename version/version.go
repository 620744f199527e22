// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports build information of the running binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

// Info describes a build.
type Info struct {
	// Name is the command name, see CmdName.
	Name string
	// Version is the main module version, "devel" for local builds.
	Version string
	// Commit is the VCS revision the binary was built from, if known.
	Commit string
	// Modified is true if the working tree had uncommitted changes.
	Modified bool
	// BuildTime is the commit time reported by the VCS, if known.
	BuildTime time.Time
	// Go is the Go version used to build the binary.
	Go string
	// OS and Arch are the target platform.
	OS, Arch string
}

// String returns a multi-line, human-readable form of i.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", i.Name, i.Version)
	if i.Commit != "" {
		fmt.Fprintf(&sb, " (%s", i.Commit)
		if i.Modified {
			sb.WriteString(", modified")
		}
		sb.WriteString(")")
	}
	sb.WriteString("\n")
	if !i.BuildTime.IsZero() {
		fmt.Fprintf(&sb, "built at %s\n", i.BuildTime.Format(time.RFC3339))
	}
	fmt.Fprintf(&sb, "%s %s/%s\n", i.Go, i.OS, i.Arch)
	return sb.String()
}

var info = sync.OnceValue(func() Info {
	i := Info{
		Name:    CmdName(),
		Version: "devel",
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		i.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
		case "vcs.modified":
			i.Modified = s.Value == "true"
		case "vcs.time":
			i.BuildTime, _ = time.Parse(time.RFC3339, s.Value)
		}
	}
	return i
})

// Version returns build information of the running binary.
func Version() Info { return info() }

// CmdName returns the base name of the running executable, without the
// ".exe" suffix.
func CmdName() string {
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, ".exe")
}
