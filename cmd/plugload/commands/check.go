package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify every plugin is installed in a version the manifest accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.loadOptions(cmd)
			if err != nil {
				return err
			}

			report, checkErr := c.app.Check(cmd.Context(), opts)
			if report == nil {
				return checkErr
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, r := range report.Results {
				installed := r.Installed
				if installed == "" {
					installed = "-"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Status, r.Path, r.RawName, r.Declared, installed)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			for _, r := range report.Failures() {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.RawName, r.Err)
			}
			return checkErr
		},
	}
}
