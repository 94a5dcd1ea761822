// Package version reports which shade build is running. The values below are
// overwritten by the release build through -ldflags -X.
package version

import (
	"fmt"
	"runtime"
)

// Name is the binary name used in version output.
const Name = "shade"

const unset = "unknown"

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the full git commit hash.
	Commit = unset

	// Date is the UTC build time in RFC3339 format.
	Date = unset

	// GoVersion is the Go toolchain the binary was built with.
	GoVersion = runtime.Version()
)

// Info is the build metadata printed by `shade version`.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo collects the build metadata.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Released reports whether commit and date were stamped at build time.
func (i Info) Released() bool {
	return i.Commit != unset && i.Date != unset
}

// ShortCommit returns the first 8 characters of the commit hash.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 8 {
		return i.Commit[:8]
	}
	return i.Commit
}

// String returns the line printed by `shade version`, e.g.
// "shade version 1.2.0 (commit: 0123abcd, built: 2025-01-01T00:00:00Z, go1.25.1, linux/amd64)".
func String() string {
	info := GetInfo()
	if info.Released() {
		return fmt.Sprintf("%s version %s (commit: %s, built: %s, %s, %s)",
			Name, info.Version, info.ShortCommit(), info.Date, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("%s version %s (%s, %s)", Name, info.Version, info.GoVersion, info.Platform)
}

// Short returns the bare version, used by `shade --version`'s cobra field.
func Short() string {
	return Version
}
