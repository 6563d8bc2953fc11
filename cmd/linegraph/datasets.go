package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"linegraph/store"
	"linegraph/utils"
)

func datasetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List the built-in datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := store.Default()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPOINTS\tX AXIS\tY AXIS")
			for _, d := range catalog.Datasets() {
				cfg := d.Config()
				fmt.Fprintf(w, "%s\t%s\t%d\t%s (0-%s by %s)\t%s (0-%s by %s)\n",
					d.ID(), d.Name(), d.Len(),
					cfg.XLabel(), utils.FormatNumber(cfg.XMax()), utils.FormatNumber(cfg.XInterval()),
					cfg.YLabel(), utils.FormatNumber(cfg.YMax()), utils.FormatNumber(cfg.YInterval()),
				)
			}
			return w.Flush()
		},
	}
}
