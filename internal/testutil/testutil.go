// Package testutil provides shared test helpers for drafts directories and clocks.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/starford/drafts/internal/storage"
)

// TestDrafts creates a temporary working directory and a storage.FS rooted
// at its (not yet existing) "drafts" subdirectory.
func TestDrafts(t *testing.T) (string, *storage.FS) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "drafts")
	store, err := storage.NewFS(root)
	if err != nil {
		t.Fatal(err)
	}
	return root, store
}

// FixedClock returns a clock that always reports the given local date at noon.
func FixedClock(year int, month time.Month, day int) func() time.Time {
	ts := time.Date(year, month, day, 12, 0, 0, 0, time.Local)
	return func() time.Time { return ts }
}
