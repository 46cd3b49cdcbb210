package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/randalmurphal/typesignal/pkg/typesignal"
	"github.com/randalmurphal/typesignal/pkg/typesignal/journal"
)

// Journal drivers.
const (
	DriverNone   = "none"
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Settings configures a hub and its journal.
type Settings struct {
	Log     LogSettings     `yaml:"log" json:"log" envPrefix:"LOG_"`
	Metrics bool            `yaml:"metrics" json:"metrics" env:"METRICS"`
	Tracing bool            `yaml:"tracing" json:"tracing" env:"TRACING"`
	Journal JournalSettings `yaml:"journal" json:"journal" envPrefix:"JOURNAL_"`
}

// LogSettings selects the log level and handler.
type LogSettings struct {
	Level  string `yaml:"level" json:"level" env:"LEVEL" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" json:"format" env:"FORMAT" validate:"omitempty,oneof=text json"`
}

// JournalSettings selects where emissions are journaled.
type JournalSettings struct {
	Driver string `yaml:"driver" json:"driver" env:"DRIVER" validate:"omitempty,oneof=none memory sqlite"`
	Path   string `yaml:"path" json:"path" env:"PATH" validate:"required_if=Driver sqlite"`
}

// Default returns the settings used when nothing is configured: info level
// text logs, no metrics, no tracing, no journal.
func Default() Settings {
	return Settings{
		Log:     LogSettings{Level: "info", Format: "text"},
		Journal: JournalSettings{Driver: DriverNone},
	}
}

var validate = validator.New()

// Validate checks field values.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// Level returns the configured slog level. Unset means info.
func (s Settings) Level() slog.Level {
	var level slog.Level
	if s.Log.Level == "" {
		return slog.LevelInfo
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(s.Log.Level))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Logger builds a logger writing to w.
func (s Settings) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: s.Level()}
	if s.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// HubOptions returns the hub options matching the settings.
// A nil logger leaves the hub silent.
func (s Settings) HubOptions(logger *slog.Logger) []typesignal.Option {
	return []typesignal.Option{
		typesignal.WithLogger(logger),
		typesignal.WithMetrics(s.Metrics),
		typesignal.WithTracing(s.Tracing),
	}
}

// OpenJournal opens the configured store. It returns nil without error
// when the driver is none or unset.
func (s Settings) OpenJournal() (journal.Store, error) {
	switch s.Journal.Driver {
	case "", DriverNone:
		return nil, nil
	case DriverMemory:
		return journal.NewMemoryStore(), nil
	case DriverSQLite:
		store, err := journal.NewSQLiteStore(s.Journal.Path)
		if err != nil {
			return nil, fmt.Errorf("open journal: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported journal driver: %s", s.Journal.Driver)
	}
}
