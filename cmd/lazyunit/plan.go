// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lazyunit/lazyunit/internal/installer"
)

var planCmd = &cobra.Command{
	Use:   "plan <address>",
	Short: "Show what installing a requirements address would do",
	Long: `Run the installer's dry run against a requirements address and render
the resulting plan without changing anything.

The address is either a bare path to a requirements file or
'<package>:<relative-path>' anchored inside an installed package.`,
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

		plan, err := svc.adapter.DryRun(cmd.Context(), []string{"-r", reqFile})
		if err != nil {
			return err
		}

		renderPlan(cmd.OutOrStdout(), reqFile, plan)
		return nil
	},
}

// renderPlan prints a dry-run plan: the resolved requirements file and one
// line per package the installer would install.
func renderPlan(w io.Writer, reqFile string, plan *installer.Plan) {
	fmt.Fprintln(w, TitleStyle.Render("Install Plan"))
	fmt.Fprintf(w, "  %s %s\n", SubtitleStyle.Render("Requirements:"), reqFile)
	fmt.Fprintln(w)

	if plan.Empty() {
		fmt.Fprintln(w, SuccessStyle.Render("  Nothing to install: all requirements satisfied."))
		return
	}

	for _, e := range plan.Install {
		if e.Summary != "" {
			fmt.Fprintf(w, "  %s  %s\n", PkgStyle.Render(e.Name+"=="+e.Version), SubtitleStyle.Render(e.Summary))
		} else {
			fmt.Fprintf(w, "  %s\n", PkgStyle.Render(e.Name+"=="+e.Version))
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %d package(s) to install\n", len(plan.Install))
}
