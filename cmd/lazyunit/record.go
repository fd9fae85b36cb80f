// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Inspect the install record",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	recordCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recorded installs",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadServices()
			if err != nil {
				return err
			}

			recs, err := svc.recorder.Records()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(out, SubtitleStyle.Render("No installs recorded yet."))
				return nil
			}

			fmt.Fprintln(out, TitleStyle.Render("Install Record"))
			for _, r := range recs {
				fmt.Fprintf(out, "\n  %s  %s\n", r.Installed.Format("2006-01-02 15:04:05"), SubtitleStyle.Render(r.Caller))
				fmt.Fprintf(out, "  %s %s\n", SubtitleStyle.Render("Requirements:"), r.Requirements)
				for _, e := range r.Entries {
					fmt.Fprintf(out, "    %s\n", PkgStyle.Render(e.Name+"=="+e.Version))
				}
			}
			return nil
		},
	})

	recordCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the install record file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadServices()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), svc.recorder.Path())
			return nil
		},
	})
}
