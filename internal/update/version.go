// Package update holds the build metadata of the binaries.
package update

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version information injected by ldflags during build.
var (
	// Version is the current version (e.g., "1.0.0")
	Version = "dev"
	// Commit is the git commit hash
	Commit = "unknown"
	// BuildDate is the build timestamp
	BuildDate = "unknown"
)

// IsRelease reports whether Version is a semantic version rather than a
// development build
func IsRelease() bool {
	_, err := semver.NewVersion(Version)
	return err == nil
}

// String returns the line printed by --version. Development builds are
// marked as such.
func String(name string) string {
	build := ""
	if !IsRelease() {
		build = ", development build"
	}
	return fmt.Sprintf("%s %s (commit %s, built %s%s)", name, Version, Commit, BuildDate, build)
}
