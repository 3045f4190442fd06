package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/armadaproject/graphbench/internal/graphbench/backend"
)

func backendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the supported database backends in canonical order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBACKEND\tFAMILY")
			for _, id := range backend.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", id.Name(), id, id.Family())
			}
			return w.Flush()
		},
	}
}
