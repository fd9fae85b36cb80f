// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name: "operation only",
			err: &ActionableError{
				Operation: "load configuration",
			},
			expected: "failed to load configuration",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "./config.cue",
			},
			expected: "failed to load configuration: ./config.cue",
		},
		{
			name: "operation with cause",
			err: &ActionableError{
				Operation: "resolve dependencies",
				Cause:     errors.New("anchor package not found"),
			},
			expected: "failed to resolve dependencies: anchor package not found",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "resolve dependencies",
				Resource:  "libcompute:requirements.txt",
				Cause:     errors.New("anchor package not found"),
			},
			expected: "failed to resolve dependencies: libcompute:requirements.txt: anchor package not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &ActionableError{
		Operation: "test",
		Cause:     cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	errNoCause := &ActionableError{Operation: "test"}
	if errNoCause.Unwrap() != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	err := &ActionableError{
		Operation:   "resolve dependencies",
		Resource:    "libcompute:requirements.txt",
		Suggestions: []string{"Run 'lazyunit site list'", "Check site_paths in config.cue"},
		Cause:       errors.New("anchor package not found"),
	}

	short := err.Format(false)
	for _, want := range []string{
		"failed to resolve dependencies",
		"libcompute:requirements.txt",
		"• Run 'lazyunit site list'",
		"• Check site_paths in config.cue",
	} {
		if !strings.Contains(short, want) {
			t.Errorf("Format(false) missing %q:\n%s", want, short)
		}
	}
	if strings.Contains(short, "Error chain") {
		t.Error("Format(false) should not include the error chain")
	}

	long := err.Format(true)
	if !strings.Contains(long, "Error chain:") {
		t.Errorf("Format(true) should include the error chain:\n%s", long)
	}
	if !strings.Contains(long, "1. anchor package not found") {
		t.Errorf("Format(true) should enumerate causes:\n%s", long)
	}
}

func TestErrorContext_Build(t *testing.T) {
	cause := errors.New("boom")
	err := NewErrorContext().
		WithOperation("install dependencies").
		WithResource("/tmp/requirements.txt").
		WithSuggestion("Check network access").
		Wrap(cause).
		Build()

	if err == nil {
		t.Fatal("Build() returned nil")
	}
	if err.Operation != "install dependencies" || err.Resource != "/tmp/requirements.txt" {
		t.Errorf("Build() = %+v", err)
	}
	if !err.HasSuggestions() {
		t.Error("HasSuggestions() should be true")
	}
	if !errors.Is(err, cause) {
		t.Error("built error should wrap its cause")
	}
}

func TestErrorContext_RequiresOperation(t *testing.T) {
	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without an operation should return nil")
	}
	if NewErrorContext().WithResource("x").BuildError() != nil {
		t.Error("BuildError() without an operation should return nil")
	}
}

func TestWrapWithOperation(t *testing.T) {
	if WrapWithOperation(nil, "anything") != nil {
		t.Error("WrapWithOperation(nil) should return nil")
	}

	cause := errors.New("boom")
	err := WrapWithOperation(cause, "load unit")
	if err == nil || err.Operation != "load unit" || !errors.Is(err, cause) {
		t.Errorf("WrapWithOperation = %+v", err)
	}
}
