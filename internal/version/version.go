// Package version reports the build version of quotedesk.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/quotedesk/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/quotedesk/internal/version.Commit=abc123"
//
// Unset values are filled from the VCS stamp in the build info, then from a
// dev timestamp.
var (
	Version = ""
	Commit  = ""
)

// Info is the resolved build information.
type Info struct {
	Version   string
	Commit    string
	Modified  bool
	GoVersion string
}

func init() {
	info := fromBuildInfo()
	if Commit == "" {
		Commit = info.Commit
	}
	if Version == "" {
		Version = info.Version
	}

	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

func fromBuildInfo() Info {
	var out Info
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}
	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		out.Version = bi.Main.Version
	}

	var revision, vcsTime string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		case "vcs.time":
			vcsTime = s.Value
		}
	}

	if revision != "" {
		if len(revision) > 7 {
			revision = revision[:7]
		}
		out.Commit = revision
		if out.Modified {
			out.Commit += "-dirty"
		}
	}
	if out.Version == "" && vcsTime != "" {
		if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			out.Version = fmt.Sprintf("dev-%s", t.Format("20060102"))
		}
	}
	return out
}

// Get returns the resolved build information.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Modified:  len(Commit) > 6 && Commit[len(Commit)-6:] == "-dirty",
		GoVersion: runtime.Version(),
	}
}

// Full returns the version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
