// Package version reports the create-fs-app build and the toolchain it
// drives.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set with -ldflags "-X github.com/create-fs-app/cli/internal/version.Version=...".
var (
	Version   = "v0.0.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info is the output of `create-fs-app version`.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`

	// Tools is filled by DetectTools; Get leaves it empty.
	Tools []ToolInfo `json:"tools,omitempty" yaml:"tools,omitempty"`
}

// Get returns the build information. Binaries built with `go install`
// carry no ldflags, so the commit and date then come from the embedded VCS
// stamp when present.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(&info, bi)
	}
	return info
}

func fillFromBuildInfo(info *Info, bi *debug.BuildInfo) {
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.GitCommit == "unknown":
			info.GitCommit = s.Value
		case s.Key == "vcs.time" && info.BuildDate == "unknown":
			info.BuildDate = s.Value
		}
	}
}

func (i Info) String() string {
	var sb strings.Builder
	sb.WriteString("create-fs-app:\n")
	fmt.Fprintf(&sb, "  Version:  %s\n", i.Version)
	fmt.Fprintf(&sb, "  Build ID: %s/%s\n", i.BuildDate, i.GitCommit)
	fmt.Fprintf(&sb, "  Go:       %s", i.GoVersion)
	if len(i.Tools) == 0 {
		return sb.String()
	}
	sb.WriteString("\n\nTools:")
	for _, t := range i.Tools {
		sb.WriteString("\n" + t.String())
	}
	return sb.String()
}
