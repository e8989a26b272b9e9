// Package version reports the firmware build identity.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/softap/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/softap/internal/version.Commit=abc123"
//
// Otherwise they are filled from the embedded VCS info, or "dev"/"unknown".
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Commit == "" {
		Commit = vcsRevision(debug.ReadBuildInfo)
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// vcsRevision returns the short commit hash recorded in the build info,
// suffixed with "-dirty" for modified trees.
func vcsRevision(read func() (*debug.BuildInfo, bool)) string {
	info, ok := read()
	if !ok {
		return ""
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return ""
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if modified {
		revision += "-dirty"
	}
	return revision
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
