// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"encoding/json"
	"fmt"
	"io"
)

type (
	// Plan is what a dry run reports the installer would do.
	Plan struct {
		Install []PlanEntry
	}

	// PlanEntry is one package the installer would install.
	PlanEntry struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
		Summary string `toml:"summary,omitempty"`
	}

	// report mirrors the installer's JSON report document:
	// {"install": [{"metadata": {"name": ..., "version": ..., "summary": ...}}]}
	report struct {
		Install []reportEntry `json:"install"`
	}

	reportEntry struct {
		Metadata reportMetadata `json:"metadata"`
	}

	reportMetadata struct {
		Name    string `json:"name"`
		Version string `json:"version"`
		Summary string `json:"summary"`
	}
)

// Empty reports whether the plan installs nothing.
func (p *Plan) Empty() bool { return len(p.Install) == 0 }

// String renders one entry the way the resolve log reports it.
func (e PlanEntry) String() string {
	if e.Summary != "" {
		return fmt.Sprintf("%s==%s (%s)", e.Name, e.Version, e.Summary)
	}
	return fmt.Sprintf("%s==%s", e.Name, e.Version)
}

// decodeReport parses the installer's JSON report into a Plan.
func decodeReport(r io.Reader) (*Plan, error) {
	var rep report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("decode installer report: %w", err)
	}
	plan := &Plan{}
	for _, e := range rep.Install {
		plan.Install = append(plan.Install, PlanEntry{
			Name:    e.Metadata.Name,
			Version: e.Metadata.Version,
			Summary: e.Metadata.Summary,
		})
	}
	return plan, nil
}
