package typesignal

import (
	"reflect"
	"sync"

	"github.com/randalmurphal/typesignal/pkg/typesignal/registry"
)

// Entry is one signal in a type's table.
type Entry struct {
	name    string
	channel *Channel

	mu            sync.RWMutex
	origin        reflect.Type
	cascade       bool
	cascadeEdge   bool
	universalEdge bool
}

// Name returns the signal name.
func (e *Entry) Name() string {
	return e.name
}

// Channel returns the type-level channel. It never changes once created.
func (e *Entry) Channel() *Channel {
	return e.channel
}

// Origin returns the type whose declaration supplied this signal. For an
// inherited signal it is the most base ancestor that declares the name.
func (e *Entry) Origin() reflect.Type {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.origin
}

// Cascade reports whether emissions forward to the base-level channel.
// Once set it stays set; cascade edges are never removed.
func (e *Entry) Cascade() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cascade
}

// Schema returns the entry's effective schema.
func (e *Entry) Schema() Schema {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Schema{name: e.name, cascade: e.cascade}
}

// Table is the ordered set of signals declared on one type.
type Table struct {
	owner   reflect.Type
	entries *registry.Registry[string, *Entry]
}

func newTable(owner reflect.Type) *Table {
	return &Table{owner: owner, entries: registry.New[string, *Entry]()}
}

// Owner returns the type the table belongs to.
func (t *Table) Owner() reflect.Type {
	return t.owner
}

// Lookup returns the entry for name.
func (t *Table) Lookup(name string) (*Entry, bool) {
	return t.entries.Get(name)
}

// Has reports whether name is declared.
func (t *Table) Has(name string) bool {
	return t.entries.Has(name)
}

// Names returns the declared signal names in declaration order.
func (t *Table) Names() []string {
	return t.entries.Keys()
}

// Entries returns the entries in declaration order.
func (t *Table) Entries() []*Entry {
	return t.entries.Values()
}

// Len returns the number of declared signals.
func (t *Table) Len() int {
	return t.entries.Len()
}

// entry returns the entry for name, creating it and its channel on first
// use.
func (t *Table) entry(name string, origin reflect.Type) *Entry {
	e, _ := t.entries.GetOrCreate(name, func() *Entry {
		return &Entry{
			name:    name,
			origin:  origin,
			channel: newChannel(name, t.owner),
		}
	})
	return e
}
