package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newStatsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count emissions per signal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := root.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			counts, err := store.CountBySignal()
			if err != nil {
				return err
			}

			names := make([]string, 0, len(counts))
			total := 0
			for name, n := range counts {
				names = append(names, name)
				total += n
			}
			sort.Strings(names)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SIGNAL\tCOUNT")
			for _, name := range names {
				fmt.Fprintf(tw, "%s\t%d\n", name, counts[name])
			}
			fmt.Fprintf(tw, "total\t%d\n", total)
			return tw.Flush()
		},
	}
}
