package version

import (
	"strings"
	"testing"
)

func TestStringDevBuild(t *testing.T) {
	got := String()
	if !strings.HasPrefix(got, "shade version dev (") {
		t.Errorf("String() = %q, want dev build prefix", got)
	}
	if !strings.Contains(got, GetInfo().Platform) {
		t.Errorf("String() = %q, missing platform", got)
	}
}

func TestStringReleaseBuild(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = origVersion, origCommit, origDate })

	Version = "1.2.3"
	Commit = "0123456789abcdef"
	Date = "2025-01-01T00:00:00Z"

	got := String()
	if !strings.Contains(got, "commit: 01234567") {
		t.Errorf("String() = %q, want shortened commit", got)
	}
	if Short() != "1.2.3" {
		t.Errorf("Short() = %q, want 1.2.3", Short())
	}
}

func TestShortCommitHandlesShortHashes(t *testing.T) {
	if got := (Info{Commit: "abc"}).ShortCommit(); got != "abc" {
		t.Errorf("ShortCommit() = %q, want abc", got)
	}
	if (Info{Commit: "abc", Date: unset}).Released() {
		t.Error("Released() should be false without a build date")
	}
}
