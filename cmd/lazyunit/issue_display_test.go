// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lazyunit/lazyunit/internal/depspec"
	"github.com/lazyunit/lazyunit/internal/installer"
	"github.com/lazyunit/lazyunit/internal/issue"
	"github.com/lazyunit/lazyunit/pkg/unit"
)

func TestIssueFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want issue.Id
	}{
		{"halted", &unit.HaltedError{Name: "x"}, issue.UnitHaltedId},
		{"not found", &unit.NotFoundError{Name: "x"}, issue.UnitNotFoundId},
		{"anchor missing", &depspec.AnchorNotFoundError{Anchor: "x"}, issue.AnchorNotFoundId},
		{"no installer", installer.ErrNoCommand, issue.InstallerNotConfiguredId},
		{"wrapped", fmt.Errorf("loading: %w", &unit.NotFoundError{Name: "x"}), issue.UnitNotFoundId},
		{"explicit exit error id", &ExitError{Code: 1, Err: errors.New("boom"), IssueID: issue.InstallFailedId}, issue.InstallFailedId},
		{"unmapped", errors.New("boom"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := issueFor(tt.err); got != tt.want {
				t.Errorf("issueFor = %d, want %d", got, tt.want)
			}
		})
	}
}
