package space

import "testing"

func TestOccupancyScriptsCompile(t *testing.T) {
	// Compile-time smoke test: scripts should be initialized.
	if occupancyAcquireScript == nil || occupancyReleaseScript == nil {
		t.Fatalf("expected scripts to be initialized")
	}
}

func TestOccupancyKey(t *testing.T) {
	if got := occupancyKey(42); got != "space:42:occupancy" {
		t.Fatalf("unexpected key %q", got)
	}
}
