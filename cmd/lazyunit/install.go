// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lazyunit/lazyunit/internal/installer"
	"github.com/lazyunit/lazyunit/internal/issue"
)

var installCmd = &cobra.Command{
	Use:   "install <address>",
	Short: "Install a requirements address (dry run first, then the real install)",
	Long: `Resolve a requirements address, ask the installer what it would do, and
perform the real install only when the plan is non-empty. Completed installs
are appended to the install record.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadServices()
		if err != nil {
			return err
		}

		reqFile, err := svc.resolveAddress(args[0])
		if err != nil {
			return err
		}

		specs := []string{"-r", reqFile}
		plan, err := svc.adapter.DryRun(cmd.Context(), specs)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		renderPlan(out, reqFile, plan)
		if plan.Empty() {
			return nil
		}

		if err := svc.adapter.Install(cmd.Context(), specs); err != nil {
			return &ExitError{Code: 1, Err: err, IssueID: issue.InstallFailedId}
		}
		svc.index.Invalidate()

		rec := installer.Record{
			Caller:       "lazyunit install",
			Requirements: reqFile,
			Installed:    time.Now(),
			Entries:      plan.Install,
		}
		if err := svc.recorder.Append(rec); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render("Warning: ")+err.Error())
		}

		fmt.Fprintln(out, SuccessStyle.Render(fmt.Sprintf("Installed %d package(s).", len(plan.Install))))
		return nil
	},
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <specifier>...",
	Short: "Uninstall packages",
	Long: `Remove packages through the external installer. This is the cleanup
counterpart of install; lazy groups never call it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadServices()
		if err != nil {
			return err
		}

		if err := svc.adapter.Uninstall(cmd.Context(), args); err != nil {
			return &ExitError{Code: 1, Err: err, IssueID: issue.InstallFailedId}
		}
		svc.index.Invalidate()

		fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render(fmt.Sprintf("Uninstalled %d specifier(s).", len(args))))
		return nil
	},
}
