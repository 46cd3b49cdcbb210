package typesignal

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/randalmurphal/typesignal/pkg/typesignal/observability"
)

// EmitType emits schema at type level on t. Senders default to t itself.
//
// The signal must be declared on t, directly, through an ancestor, or
// through t's Declarer list; otherwise EmitType fails with
// ErrSignalNotDefined. Handlers run before EmitType returns: first the
// type-level receivers in connection order, with the cascade edges
// forwarding to the base-level and universal channels as they are reached.
func (h *Hub) EmitType(t reflect.Type, schema Schema, opts ...EmitOption) error {
	cfg := newEmitConfig(opts)
	if !cfg.condition {
		return nil
	}
	t = normalize(t)
	if len(cfg.senders) == 0 {
		cfg.senders = []any{t}
	}
	return h.emit(t, schema, cfg)
}

// Emit emits schema at instance level. Senders default to obj itself;
// the signal is looked up on obj's type.
func (h *Hub) Emit(obj any, schema Schema, opts ...EmitOption) error {
	cfg := newEmitConfig(opts)
	if !cfg.condition {
		return nil
	}
	if obj == nil {
		return &TypeError{Err: ErrNotEmitter}
	}
	if len(cfg.senders) == 0 {
		cfg.senders = []any{obj}
	}
	return h.emit(normalize(reflect.TypeOf(obj)), schema, cfg)
}

func (h *Hub) emit(t reflect.Type, schema Schema, cfg emitConfig) error {
	info, err := h.ensureDeclared(t)
	if err != nil {
		return err
	}
	entry, ok := info.table.Lookup(schema.Name())
	if !ok {
		return h.undefined(cfg.ctx, info.typ, schema.Name())
	}

	name := typeName(info.typ)
	ctx, span := h.spans.StartEmitSpan(cfg.ctx, name, schema.Name())
	defer h.spans.EndSpanWithError(span, nil)

	e := Emission{
		ID:       uuid.NewString(),
		Schema:   schema,
		Declared: entry.Schema(),
		Senders:  cfg.senders,
		Payload:  cfg.payload,
		Source:   info.typ,
		Time:     time.Now(),
		ctx:      ctx,
	}

	done := observability.TimedOperation()
	n := entry.Channel().Send(e)
	elapsed := done()

	h.metrics.RecordEmit(ctx, name, schema.Name(), n, elapsed)
	observability.LogEmit(h.logger, name, schema.Name(), n, observability.Milliseconds(elapsed))
	return nil
}
