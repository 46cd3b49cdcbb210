// Package config loads hub settings from YAML or JSON files and the
// environment.
//
// # Loading
//
//	s, err := config.Load("typesignal.yaml")
//	if err != nil {
//	    return err
//	}
//	logger := s.Logger(os.Stderr)
//	hub := typesignal.New(s.HubOptions(logger)...)
//
// Load starts from Default, applies the file if a path is given, then
// applies TYPESIGNAL_* environment variables, then validates.
//
// # File Format
//
//	log:
//	  level: debug
//	  format: json
//	metrics: true
//	tracing: false
//	journal:
//	  driver: sqlite
//	  path: ./journal.db
//
// # Environment
//
//	TYPESIGNAL_LOG_LEVEL, TYPESIGNAL_LOG_FORMAT
//	TYPESIGNAL_METRICS, TYPESIGNAL_TRACING
//	TYPESIGNAL_JOURNAL_DRIVER, TYPESIGNAL_JOURNAL_PATH
package config
