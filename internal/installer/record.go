// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type (
	// Record is one completed install: which group asked for it, which
	// requirements file it resolved, and what the plan said would land.
	Record struct {
		// Caller labels the group that triggered the install.
		Caller string `toml:"caller"`
		// Requirements is the resolved requirements file path.
		Requirements string `toml:"requirements"`
		// Installed is when the install finished.
		Installed time.Time `toml:"installed"`
		// Entries are the packages the dry run planned.
		Entries []PlanEntry `toml:"entries,omitempty"`
	}

	// Recorder appends install records to a TOML state file. It is purely
	// observational: recording failures never fail an install.
	Recorder struct {
		path string
	}

	recordFile struct {
		Records []Record `toml:"records"`
	}
)

// NewRecorder creates a recorder writing to the given state file path.
func NewRecorder(path string) *Recorder {
	return &Recorder{path: path}
}

// Path returns the state file path.
func (r *Recorder) Path() string { return r.path }

// Append adds a record to the state file, creating it (and its directory) on
// first use.
func (r *Recorder) Append(rec Record) error {
	existing, err := r.Records()
	if err != nil {
		return err
	}

	doc := recordFile{Records: append(existing, rec)}
	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode install record: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write install record: %w", err)
	}
	return nil
}

// Records reads back all recorded installs. A missing state file is an empty
// history, not an error.
func (r *Recorder) Records() ([]Record, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read install record: %w", err)
	}

	var doc recordFile
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse install record %s: %w", r.path, err)
	}
	return doc.Records, nil
}
