package typesignal

import (
	"reflect"
)

// Inherited is one signal as resolved across a type's lineage.
type Inherited struct {
	Schema Schema
	Origin reflect.Type
}

// mergeTables folds tables into one ordered list, visiting them in the
// given order. A later table overwrites an earlier one on a name
// collision: with tables passed most derived first, the most base
// declaration of a name wins, including its cascade flag and origin.
// Names keep the position of their first appearance.
func mergeTables(tables []*Table) []Inherited {
	index := make(map[string]int)
	var out []Inherited
	for _, tbl := range tables {
		for _, e := range tbl.Entries() {
			inh := Inherited{Schema: e.Schema(), Origin: e.Origin()}
			if i, ok := index[e.Name()]; ok {
				out[i] = inh
				continue
			}
			index[e.Name()] = len(out)
			out = append(out, inh)
		}
	}
	return out
}

// Resolve merges the tables declared anywhere in t's lineage, t included.
// A base type's declaration of a name takes precedence over a derived
// type's redeclaration of it.
func (h *Hub) Resolve(t reflect.Type) ([]Inherited, error) {
	info, err := h.register(t)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	tables := h.tablesLocked(info.lineage)
	h.mu.Unlock()

	return mergeTables(tables), nil
}

// tablesLocked returns the tables of the declared types in lineage, in
// lineage order.
func (h *Hub) tablesLocked(lineage []reflect.Type) []*Table {
	var tables []*Table
	for _, t := range lineage {
		if info, ok := h.types[t]; ok && info.table != nil {
			tables = append(tables, info.table)
		}
	}
	return tables
}
