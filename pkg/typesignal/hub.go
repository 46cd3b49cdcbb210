package typesignal

import (
	"log/slog"
	"reflect"
	"sync"

	"github.com/randalmurphal/typesignal/pkg/typesignal/observability"
)

// EventTriggered names the universal channel. Every emission on every
// type-level channel is forwarded to it, whatever its name or cascade flag.
const EventTriggered = "generic_event"

// Hub holds one signal universe: the types it knows, their tables, and the
// base-level namespace with the universal channel.
//
// A Hub is safe for concurrent use. Handlers run without any hub lock held.
type Hub struct {
	mu    sync.Mutex
	types map[reflect.Type]*typeInfo
	order []reflect.Type

	base      *Namespace
	universal *Channel

	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// typeInfo is the hub's record of one registered type.
type typeInfo struct {
	typ      reflect.Type
	lineage  []reflect.Type // typ first, most base last
	children []reflect.Type // direct subtypes in registration order
	table    *Table         // nil until declared
}

// New creates an empty hub.
func New(opts ...Option) *Hub {
	h := &Hub{
		types:   make(map[reflect.Type]*typeInfo),
		base:    NewNamespace(),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.universal = h.base.Channel(EventTriggered)
	return h
}

// Register makes t and its emitter ancestors known to the hub without
// declaring anything. It is the hook that makes t visible as a subtype:
// transitive connections only reach subtypes registered before the call.
// Declare, Connect and Emit register implicitly.
func (h *Hub) Register(t reflect.Type) error {
	_, err := h.register(t)
	return err
}

func (h *Hub) register(t reflect.Type) (*typeInfo, error) {
	t = normalize(t)
	if !IsEmitter(t) {
		return nil, &TypeError{Type: t, Err: ErrNotEmitter}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.registerLocked(t), nil
}

func (h *Hub) registerLocked(t reflect.Type) *typeInfo {
	if info, ok := h.types[t]; ok {
		return info
	}

	info := &typeInfo{typ: t, lineage: linearize(t)}
	h.types[t] = info
	for _, p := range directParents(t) {
		parent := h.registerLocked(p)
		parent.children = append(parent.children, t)
	}
	h.order = append(h.order, t)
	return info
}

// Types returns the registered types, ancestors before the types that
// embed them.
func (h *Hub) Types() []reflect.Type {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]reflect.Type, len(h.order))
	copy(out, h.order)
	return out
}

// Ancestors returns t's linearization: t itself, then its emitter
// ancestors from most derived to most base.
func (h *Hub) Ancestors(t reflect.Type) ([]reflect.Type, error) {
	info, err := h.register(t)
	if err != nil {
		return nil, err
	}
	out := make([]reflect.Type, len(info.lineage))
	copy(out, info.lineage)
	return out, nil
}

// Subtypes returns a snapshot of the registered types that directly embed t.
func (h *Hub) Subtypes(t reflect.Type) ([]reflect.Type, error) {
	if _, err := h.register(t); err != nil {
		return nil, err
	}
	return h.subtypes(normalize(t)), nil
}

func (h *Hub) subtypes(t reflect.Type) []reflect.Type {
	h.mu.Lock()
	defer h.mu.Unlock()

	info, ok := h.types[t]
	if !ok {
		return nil
	}
	out := make([]reflect.Type, len(info.children))
	copy(out, info.children)
	return out
}

// Declared reports whether t has a table.
func (h *Hub) Declared(t reflect.Type) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	info, ok := h.types[normalize(t)]
	return ok && info.table != nil
}

// Events returns t's table. It does not declare t lazily.
func (h *Hub) Events(t reflect.Type) (*Table, error) {
	t = normalize(t)

	h.mu.Lock()
	defer h.mu.Unlock()

	info, ok := h.types[t]
	if !ok || info.table == nil {
		return nil, &TypeError{Type: t, Err: ErrNoNamespace}
	}
	return info.table, nil
}

// Base returns the base-level namespace.
func (h *Hub) Base() *Namespace {
	return h.base
}

// Universal returns the channel every emission is forwarded to.
func (h *Hub) Universal() *Channel {
	return h.universal
}
