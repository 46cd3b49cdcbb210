package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// timeFormat is fixed width so stored timestamps sort as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore persists records to SQLite.
// It is suitable for single-process production use.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore opens or creates a journal database.
// The path should be a file path (e.g., "./journal.db") or ":memory:" for testing.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Each :memory: connection is its own database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS emissions (
			sequence INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			signal TEXT NOT NULL,
			cascades INTEGER NOT NULL,
			source TEXT NOT NULL,
			senders TEXT NOT NULL,
			payload TEXT NOT NULL,
			timestamp TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_emissions_signal
		ON emissions(signal)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Append implements Store.
func (s *SQLiteStore) Append(rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Record{}, ErrStoreClosed
	}

	senders, err := json.Marshal(rec.Senders)
	if err != nil {
		return Record{}, fmt.Errorf("encode senders: %w", err)
	}
	payload, err := json.Marshal(rec.Payload)
	if err != nil {
		return Record{}, fmt.Errorf("encode payload: %w", err)
	}

	res, err := s.db.Exec(`
		INSERT INTO emissions (id, signal, cascades, source, senders, payload, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Signal, rec.Cascade, rec.Source, string(senders), string(payload),
		rec.Time.UTC().Format(timeFormat))
	if err != nil {
		return Record{}, fmt.Errorf("append record: %w", err)
	}

	rec.Sequence, err = res.LastInsertId()
	if err != nil {
		return Record{}, fmt.Errorf("read sequence: %w", err)
	}
	return rec, nil
}

// List implements Store.
func (s *SQLiteStore) List(f Filter) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	var where []string
	var args []any
	if f.Signal != "" {
		where = append(where, "signal = ?")
		args = append(args, f.Signal)
	}
	if f.Source != "" {
		where = append(where, "source = ?")
		args = append(args, f.Source)
	}
	if !f.Since.IsZero() {
		where = append(where, "timestamp >= ?")
		args = append(args, f.Since.UTC().Format(timeFormat))
	}

	query := `SELECT sequence, id, signal, cascades, source, senders, payload, timestamp FROM emissions`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	if f.Limit > 0 {
		// Newest f.Limit rows, returned oldest first.
		query = `SELECT * FROM (` + query + ` ORDER BY sequence DESC LIMIT ?) ORDER BY sequence`
		args = append(args, f.Limit)
	} else {
		query += " ORDER BY sequence"
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var rec Record
		var senders, payload, timestamp string
		if err := rows.Scan(&rec.Sequence, &rec.ID, &rec.Signal, &rec.Cascade, &rec.Source,
			&senders, &payload, &timestamp); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		if err := json.Unmarshal([]byte(senders), &rec.Senders); err != nil {
			return nil, fmt.Errorf("decode senders: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &rec.Payload); err != nil {
			return nil, fmt.Errorf("decode payload: %w", err)
		}
		if rec.Time, err = time.Parse(timeFormat, timestamp); err != nil {
			return nil, fmt.Errorf("decode timestamp: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return records, nil
}

// CountBySignal implements Store.
func (s *SQLiteStore) CountBySignal() (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT signal, COUNT(*) FROM emissions
		GROUP BY signal
	`)
	if err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var signal string
		var n int
		if err := rows.Scan(&signal, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[signal] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate counts: %w", err)
	}

	return counts, nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}
