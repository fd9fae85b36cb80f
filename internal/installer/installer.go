// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/shell"
)

// DefaultCommand is the installer command line used when none is configured.
const DefaultCommand = "python3 -m pip"

// ErrNoCommand is returned when an adapter is built from an empty command.
var ErrNoCommand = errors.New("no installer command configured")

type (
	// Adapter is the contract with the external installer. DryRun must not
	// change the environment; Install and Uninstall do.
	Adapter interface {
		DryRun(ctx context.Context, specs []string) (*Plan, error)
		Install(ctx context.Context, specs []string) error
		Uninstall(ctx context.Context, specs []string) error
	}

	// Runner executes one installer invocation. It exists so tests can
	// substitute the subprocess.
	Runner interface {
		Run(ctx context.Context, argv []string) error
	}

	// CommandAdapter implements Adapter by running a configured command line
	// (e.g. "python3 -m pip") as a subprocess.
	CommandAdapter struct {
		command []string
		runner  Runner
		logger  *log.Logger
	}

	// CommandOption customizes a CommandAdapter.
	CommandOption func(*CommandAdapter)

	execRunner struct {
		logger *log.Logger
	}
)

// WithRunner substitutes the subprocess runner.
func WithRunner(r Runner) CommandOption {
	return func(a *CommandAdapter) { a.runner = r }
}

// WithLogger sets the logger used for subprocess output.
func WithLogger(l *log.Logger) CommandOption {
	return func(a *CommandAdapter) { a.logger = l }
}

// ParseCommand tokenizes an installer command line using shell word-splitting
// rules, so quoted arguments survive configuration as a single string.
func ParseCommand(command string) ([]string, error) {
	fields, err := shell.Fields(command, nil)
	if err != nil {
		return nil, fmt.Errorf("parse installer command %q: %w", command, err)
	}
	if len(fields) == 0 {
		return nil, ErrNoCommand
	}
	return fields, nil
}

// NewCommandAdapter builds an adapter around the given command line.
func NewCommandAdapter(command string, opts ...CommandOption) (*CommandAdapter, error) {
	fields, err := ParseCommand(command)
	if err != nil {
		return nil, err
	}
	a := &CommandAdapter{command: fields, logger: log.Default()}
	for _, opt := range opts {
		opt(a)
	}
	if a.runner == nil {
		a.runner = &execRunner{logger: a.logger}
	}
	return a, nil
}

// DryRun asks the installer what it would install for the given specifiers
// without touching the environment, and decodes the JSON report it writes.
func (a *CommandAdapter) DryRun(ctx context.Context, specs []string) (*Plan, error) {
	f, err := os.CreateTemp("", "lazyunit-report-*.json")
	if err != nil {
		return nil, fmt.Errorf("create report file: %w", err)
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close report file: %w", err)
	}
	defer os.Remove(path)

	argv := slices.Concat(a.command, []string{"install", "--dry-run", "--no-deps", "--report", path}, specs)
	if err := a.runner.Run(ctx, argv); err != nil {
		return nil, err
	}

	rf, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open installer report: %w", err)
	}
	defer rf.Close()
	return decodeReport(rf)
}

// Install performs the real install for the given specifiers.
func (a *CommandAdapter) Install(ctx context.Context, specs []string) error {
	argv := slices.Concat(a.command, []string{"install"}, specs)
	return a.runner.Run(ctx, argv)
}

// Uninstall removes the given specifiers. Not part of the resolve cycle; it
// exists for cleanup and test tooling.
func (a *CommandAdapter) Uninstall(ctx context.Context, specs []string) error {
	argv := slices.Concat(a.command, []string{"uninstall", "-y"}, specs)
	return a.runner.Run(ctx, argv)
}

// Run executes one installer invocation, logging its output at debug level.
func (r *execRunner) Run(ctx context.Context, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	r.logger.Debug("running installer", "argv", strings.Join(argv, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("installer %q failed: %w\n%s", strings.Join(argv, " "), err, strings.TrimSpace(out.String()))
	}
	if out.Len() > 0 {
		r.logger.Debug("installer output", "output", strings.TrimSpace(out.String()))
	}
	return nil
}
