package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/plugload/internal/core/domain"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the plugins the manifest exposes, without loading them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.loadOptions(cmd)
			if err != nil {
				return err
			}
			// Listing never loads a module.
			opts.Lazy = domain.Bool(true)

			s, err := c.app.Open(cmd.Context(), opts)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, b := range s.Plugins.Bindings() {
				_, _ = fmt.Fprintf(w, "%s\t→ %s\t(%s)\n", b.Path.String(), b.RawName, s.Version(b.RawName))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "fingerprint: %s\n", s.Plugins.Fingerprint())
			return nil
		},
	}
}
