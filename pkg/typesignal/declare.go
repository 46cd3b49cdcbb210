package typesignal

import (
	"context"
	"reflect"

	"github.com/randalmurphal/typesignal/pkg/typesignal/observability"
)

// Declare declares schemas on t and returns t's table.
//
// Undeclared ancestors are declared first, from the most base one down,
// using their Declarer list. Signals declared by ancestors are inherited;
// when an ancestor declares a name that t also declares, the ancestor's
// schema wins.
//
// Declaring is idempotent: a name keeps its channel, its handlers and its
// cascade edges across repeated calls. A cascade flag can be turned on by
// a later declaration but never off.
func (h *Hub) Declare(t reflect.Type, schemas ...Schema) (*Table, error) {
	info, err := h.register(t)
	if err != nil {
		return nil, err
	}
	h.declareAncestors(info)
	return h.declare(info, schemas), nil
}

// DeclareNames declares non-cascading signals by bare name.
func (h *Hub) DeclareNames(t reflect.Type, names ...string) (*Table, error) {
	schemas := make([]Schema, len(names))
	for i, name := range names {
		schemas[i] = Signal(name)
	}
	return h.Declare(t, schemas...)
}

// ensureDeclared declares t and its ancestors lazily if needed.
func (h *Hub) ensureDeclared(t reflect.Type) (*typeInfo, error) {
	info, err := h.register(t)
	if err != nil {
		return nil, err
	}
	h.declareAncestors(info)
	if !h.Declared(info.typ) {
		h.declare(info, declaredBy(info.typ))
	}
	return info, nil
}

func (h *Hub) declareAncestors(info *typeInfo) {
	for i := len(info.lineage) - 1; i > 0; i-- {
		anc := info.lineage[i]
		if h.Declared(anc) {
			continue
		}
		h.mu.Lock()
		ancInfo := h.types[anc]
		h.mu.Unlock()
		h.declare(ancInfo, declaredBy(anc))
	}
}

func (h *Hub) declare(info *typeInfo, schemas []Schema) *Table {
	h.mu.Lock()
	inherited := mergeTables(h.tablesLocked(info.lineage[1:]))
	if info.table == nil {
		info.table = newTable(info.typ)
	}
	table := info.table
	effective := overlay(info.typ, schemas, inherited)
	for _, eff := range effective {
		h.wireLocked(table, eff)
	}
	h.mu.Unlock()

	names := make([]string, len(effective))
	for i, eff := range effective {
		names[i] = eff.Schema.Name()
	}
	observability.LogDeclare(h.logger, typeName(info.typ), names)
	h.metrics.RecordDeclare(context.Background(), typeName(info.typ), len(effective))
	return table
}

// overlay combines explicit schemas with inherited ones. An inherited
// schema replaces an explicit one of the same name, origin included.
// Repeating a name among the explicit schemas declares it once, cascading
// if any repetition cascades.
func overlay(owner reflect.Type, explicit []Schema, inherited []Inherited) []Inherited {
	index := make(map[string]int)
	var out []Inherited
	for _, s := range explicit {
		if i, ok := index[s.Name()]; ok {
			out[i].Schema.cascade = out[i].Schema.cascade || s.Cascade()
			continue
		}
		index[s.Name()] = len(out)
		out = append(out, Inherited{Schema: s, Origin: owner})
	}
	for _, inh := range inherited {
		if i, ok := index[inh.Schema.Name()]; ok {
			out[i] = inh
			continue
		}
		index[inh.Schema.Name()] = len(out)
		out = append(out, inh)
	}
	return out
}

// wireLocked creates or updates one entry and attaches its standing edges:
// to the base-level channel of the same name when cascading, and always to
// the universal channel. Each edge is attached at most once per entry.
func (h *Hub) wireLocked(table *Table, eff Inherited) {
	name := eff.Schema.Name()
	entry := table.entry(name, eff.Origin)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.origin = eff.Origin
	if eff.Schema.Cascade() {
		entry.cascade = true
	}
	if entry.cascade && !entry.cascadeEdge {
		entry.channel.attach(CascadeReceiver, name, forwardTo(h.base.Channel(name)))
		entry.cascadeEdge = true
	}
	if !entry.universalEdge {
		entry.channel.attach(UniversalReceiver, EventTriggered, forwardTo(h.universal))
		entry.universalEdge = true
	}
}
