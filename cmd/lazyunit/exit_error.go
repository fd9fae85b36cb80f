// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/lazyunit/lazyunit/internal/issue"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
	// IssueID optionally names the issue catalog entry to render alongside
	// the error.
	IssueID issue.Id
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
