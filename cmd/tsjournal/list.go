package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/typesignal/pkg/typesignal/journal"
)

type listOptions struct {
	signal string
	source string
	since  time.Duration
	limit  int
	format string
}

func newListCmd(root *rootOptions) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print journaled emissions",
		Long: `Print journaled emissions, oldest first.

Examples:
  tsjournal list --db journal.db                      # Everything
  tsjournal list --db journal.db --signal created     # One signal
  tsjournal list --db journal.db --source shop.Order  # One source type
  tsjournal list --db journal.db --since 1h -n 20     # Last 20 within the hour
  tsjournal list --db journal.db --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := root.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			f := journal.Filter{Signal: opts.signal, Source: opts.source, Limit: opts.limit}
			if opts.since > 0 {
				f.Since = time.Now().Add(-opts.since)
			}
			records, err := store.List(f)
			if err != nil {
				return err
			}
			return printRecords(cmd.OutOrStdout(), records, opts.format)
		},
	}

	cmd.Flags().StringVarP(&opts.signal, "signal", "s", "", "Filter by signal name")
	cmd.Flags().StringVar(&opts.source, "source", "", "Filter by source type name")
	cmd.Flags().DurationVar(&opts.since, "since", 0, "Only emissions newer than this (e.g. 30m)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "Keep only the newest N emissions")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "Output format (table, json)")
	return cmd
}

func printRecords(w io.Writer, records []journal.Record, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "table":
		if len(records) == 0 {
			_, err := fmt.Fprintln(w, "No emissions found")
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SEQ\tTIME\tSIGNAL\tSOURCE\tSENDERS\tPAYLOAD")
		for _, rec := range records {
			payload, err := json.Marshal(rec.Payload)
			if err != nil {
				return fmt.Errorf("encode payload: %w", err)
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
				rec.Sequence,
				rec.Time.Format(time.RFC3339),
				signalLabel(rec),
				rec.Source,
				strings.Join(rec.Senders, ","),
				payload,
			)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported output format %q: use table or json", format)
	}
}

func signalLabel(rec journal.Record) string {
	if rec.Cascade {
		return rec.Signal + "*"
	}
	return rec.Signal
}
