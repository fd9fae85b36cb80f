// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Inspect the configured site paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	siteCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List packages visible across all site paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadServices()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			pkgs := svc.index.Packages()
			if len(pkgs) == 0 {
				fmt.Fprintln(out, SubtitleStyle.Render("No packages found. Configure site_paths in your config.cue."))
				return nil
			}

			fmt.Fprintln(out, TitleStyle.Render("Installed Packages"))
			for _, p := range pkgs {
				fmt.Fprintf(out, "  %s\n", PkgStyle.Render(p))
			}
			fmt.Fprintf(out, "\n%d package(s) across %d site path(s)\n", len(pkgs), len(svc.index.Sites()))
			return nil
		},
	})

	siteCmd.AddCommand(&cobra.Command{
		Use:   "paths",
		Short: "Show the configured site paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadServices()
			if err != nil {
				return err
			}
			for _, s := range svc.index.Sites() {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	})
}
