package journal

import (
	"sync"
)

// MemoryStore is an in-memory journal for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
	closed  bool
}

// NewMemoryStore creates a new in-memory journal.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append implements Store.
func (m *MemoryStore) Append(rec Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return Record{}, ErrStoreClosed
	}

	rec.Sequence = int64(len(m.records)) + 1
	rec.Senders = append([]string(nil), rec.Senders...)
	payload := make(map[string]any, len(rec.Payload))
	for k, v := range rec.Payload {
		payload[k] = v
	}
	rec.Payload = payload

	m.records = append(m.records, rec)
	return rec, nil
}

// List implements Store.
func (m *MemoryStore) List(f Filter) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	out := []Record{}
	for _, rec := range m.records {
		if f.match(rec) {
			out = append(out, rec)
		}
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[len(out)-f.Limit:]
	}
	return out, nil
}

// CountBySignal implements Store.
func (m *MemoryStore) CountBySignal() (map[string]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	counts := make(map[string]int)
	for _, rec := range m.records {
		counts[rec.Signal]++
	}
	return counts, nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.records = nil
	return nil
}
