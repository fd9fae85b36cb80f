// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"path/filepath"
	"testing"
	"time"
)

func TestRecorder_MissingFileIsEmptyHistory(t *testing.T) {
	t.Parallel()
	r := NewRecorder(filepath.Join(t.TempDir(), "state.toml"))
	recs, err := r.Records()
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}
	if recs != nil {
		t.Errorf("Records = %v, want nil", recs)
	}
}

func TestRecorder_AppendAccumulates(t *testing.T) {
	t.Parallel()
	// The state directory does not exist yet; Append creates it.
	path := filepath.Join(t.TempDir(), "lazyunit", "state.toml")
	r := NewRecorder(path)

	first := Record{
		Caller:       "analysis.go",
		Requirements: "/tmp/requirements.txt",
		Installed:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Entries:      []PlanEntry{{Name: "left-pad", Version: "1.3.0", Summary: "Pads strings."}},
	}
	if err := r.Append(first); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	second := Record{
		Caller:       "render.go",
		Requirements: "/tmp/other.txt",
		Installed:    time.Date(2026, 8, 30, 12, 5, 0, 0, time.UTC),
	}
	if err := r.Append(second); err != nil {
		t.Fatalf("second Append failed: %v", err)
	}

	recs, err := NewRecorder(path).Records()
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}
	if recs[0].Caller != "analysis.go" || recs[1].Caller != "render.go" {
		t.Errorf("records out of order: %+v", recs)
	}
	if !recs[0].Installed.Equal(first.Installed) {
		t.Errorf("Installed = %v, want %v", recs[0].Installed, first.Installed)
	}
	if len(recs[0].Entries) != 1 || recs[0].Entries[0].Name != "left-pad" {
		t.Errorf("Entries = %+v", recs[0].Entries)
	}
	if len(recs[1].Entries) != 0 {
		t.Errorf("second record should have no entries, got %+v", recs[1].Entries)
	}
}
