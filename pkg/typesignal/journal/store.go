// Package journal records emissions for later inspection.
//
// A Recorder connects to a hub's universal channel and appends one Record
// per emission to a Store. MemoryStore suits tests; SQLiteStore persists to
// a file and is what the tsjournal command reads.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/randalmurphal/typesignal/pkg/typesignal"
)

// Store persists emission records.
// Implementations must be safe for concurrent use.
type Store interface {
	// Append stores a record and returns it with Sequence set.
	Append(rec Record) (Record, error)

	// List returns the records matching f, oldest first.
	// Returns empty slice (not error) if nothing matches.
	List(f Filter) ([]Record, error)

	// CountBySignal returns how many records exist per signal name.
	CountBySignal() (map[string]int, error)

	// Close releases any resources (connections, files).
	Close() error
}

// Record is one journaled emission.
type Record struct {
	// Sequence is assigned by the store, starting at 1.
	Sequence int64
	// ID is the emission id.
	ID     string
	Signal string
	// Cascade is the declared flag, not the one passed to the emit call.
	Cascade bool
	// Source is the name of the type the emission started on.
	Source  string
	Senders []string
	// Payload holds JSON-compatible values only.
	Payload map[string]any
	Time    time.Time
}

// Filter selects records. Zero fields match everything.
type Filter struct {
	Signal string
	Source string
	Since  time.Time
	// Limit keeps the newest Limit matches. Zero means no limit.
	Limit int
}

func (f Filter) match(rec Record) bool {
	if f.Signal != "" && rec.Signal != f.Signal {
		return false
	}
	if f.Source != "" && rec.Source != f.Source {
		return false
	}
	if !f.Since.IsZero() && rec.Time.Before(f.Since) {
		return false
	}
	return true
}

// Sentinel errors for journal operations.
var (
	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("journal store closed")

	// ErrNilStore indicates Attach was called without a store.
	ErrNilStore = errors.New("journal store is required")
)

// NewRecord converts an emission into a record. Senders are rendered with
// fmt; payload values that cannot be encoded as JSON are rendered the same
// way.
func NewRecord(e typesignal.Emission) Record {
	rec := Record{
		ID:      e.ID,
		Signal:  e.Schema.Name(),
		Cascade: e.Declared.Cascade(),
		Senders: make([]string, len(e.Senders)),
		Payload: make(map[string]any, len(e.Payload)),
		Time:    e.Time.UTC(),
	}
	if e.Source != nil {
		rec.Source = e.Source.String()
	}
	for i, s := range e.Senders {
		rec.Senders[i] = fmt.Sprint(s)
	}
	for k, v := range e.Payload {
		if _, err := json.Marshal(v); err != nil {
			rec.Payload[k] = fmt.Sprint(v)
			continue
		}
		rec.Payload[k] = v
	}
	return rec
}
