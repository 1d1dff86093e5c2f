// Package version carries build-time version information.
package version

import "fmt"

var (
	// Version is the release version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = ""
	// BuildTime is the build timestamp (set via -ldflags).
	BuildTime = ""
)

// String renders a single-line version description.
func String() string {
	s := Version
	if Commit != "" {
		s = fmt.Sprintf("%s (%s)", s, Commit)
	}
	if BuildTime != "" {
		s = fmt.Sprintf("%s built %s", s, BuildTime)
	}
	return s
}
