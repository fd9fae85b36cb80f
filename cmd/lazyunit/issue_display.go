// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lazyunit/lazyunit/internal/config"
	"github.com/lazyunit/lazyunit/internal/depspec"
	"github.com/lazyunit/lazyunit/internal/installer"
	"github.com/lazyunit/lazyunit/internal/issue"
	"github.com/lazyunit/lazyunit/pkg/unit"
)

// issueFor maps a failure to its issue catalog entry. An ExitError can carry
// an explicit ID; otherwise the error chain's sentinels decide. Zero means no
// catalog entry applies.
func issueFor(err error) issue.Id {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.IssueID != 0 {
		return exitErr.IssueID
	}

	switch {
	case errors.Is(err, unit.ErrUnitHalted):
		return issue.UnitHaltedId
	case errors.Is(err, unit.ErrUnitNotFound):
		return issue.UnitNotFoundId
	case errors.Is(err, depspec.ErrAnchorNotFound):
		return issue.AnchorNotFoundId
	case errors.Is(err, installer.ErrNoCommand):
		return issue.InstallerNotConfiguredId
	default:
		return 0
	}
}

// renderIssueHelp prints the catalog entry matching err, if there is one.
func renderIssueHelp(stderr io.Writer, err error) {
	entry := issue.Get(issueFor(err))
	if entry == nil {
		return
	}

	rendered, renderErr := entry.Render(issueStyle())
	if renderErr != nil {
		log.Warn("failed to render issue catalog entry", "issueID", entry.Id(), "error", renderErr)
		return
	}
	fmt.Fprint(stderr, rendered)
}

// issueStyle picks the glamour style for the configured color scheme.
func issueStyle() string {
	cfg, err := config.Load()
	if err == nil && cfg.UI.ColorScheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}
