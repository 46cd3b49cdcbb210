package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/typesignal/pkg/typesignal/config"
	"github.com/randalmurphal/typesignal/pkg/typesignal/journal"
)

// errNoJournal is returned when neither --db nor the configuration names a journal.
var errNoJournal = errors.New("no journal configured: pass --db or set journal.driver in the config")

type rootOptions struct {
	configPath string
	dbPath     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tsjournal",
		Short: "Inspect typesignal emission journals",
		Long: `tsjournal reads the SQLite journal a journal.Recorder writes.

The journal is taken from --db, or else from the configuration file and
TYPESIGNAL_* environment variables.

Available commands:
  list     Print journaled emissions
  stats    Count emissions per signal`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file (.yaml, .yml, .json)")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite journal path, overrides the configuration")

	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newStatsCmd(opts))
	return cmd
}

// openStore resolves the journal from flags and configuration.
func (o *rootOptions) openStore() (journal.Store, error) {
	s, err := config.Load(o.configPath, func(s *config.Settings) {
		if o.dbPath != "" {
			s.Journal.Driver = config.DriverSQLite
			s.Journal.Path = o.dbPath
		}
	})
	if err != nil {
		return nil, err
	}

	store, err := s.OpenJournal()
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errNoJournal
	}
	return store, nil
}
