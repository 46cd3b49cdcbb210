package typesignal

import (
	"context"
	"reflect"

	"github.com/randalmurphal/typesignal/pkg/typesignal/observability"
)

// Connect attaches fn to the signal name on each target type. Without
// targets it attaches fn to the base-level channel of that name.
//
// On failure the receivers connected so far are returned with the error.
func (h *Hub) Connect(name string, fn Handler, targets ...reflect.Type) ([]*Receiver, error) {
	if len(targets) == 0 {
		r, err := h.ConnectBase(name, fn)
		if err != nil {
			return nil, err
		}
		return []*Receiver{r}, nil
	}

	receivers := make([]*Receiver, 0, len(targets))
	for _, t := range targets {
		r, err := h.connectType(t, name, fn, false)
		if err != nil {
			return receivers, err
		}
		receivers = append(receivers, r)
	}
	return receivers, nil
}

// ConnectType attaches fn to the signal name declared on t, declaring t
// lazily first. It fails with ErrSignalNotDefined if t has no such signal.
func (h *Hub) ConnectType(t reflect.Type, name string, fn Handler) (*Receiver, error) {
	return h.connectType(t, name, fn, false)
}

// ConnectBase attaches fn to the base-level channel name, creating the
// channel if needed. Connecting to EventTriggered observes every emission.
func (h *Hub) ConnectBase(name string, fn Handler) (*Receiver, error) {
	if err := checkConnect(name, fn); err != nil {
		return nil, err
	}
	r := h.base.Channel(name).Connect(fn)
	observability.LogConnect(h.logger, typeName(nil), name, false)
	h.metrics.RecordConnect(context.Background(), typeName(nil), name)
	return r, nil
}

// ConnectTransitive attaches fn to the signal name on each target and on
// every subtype reachable from them, each type once.
//
// Subtypes are read from the hub when the call runs. A type registered
// afterwards is not connected, even if it embeds a target; connect it
// explicitly or call ConnectTransitive again.
func (h *Hub) ConnectTransitive(name string, fn Handler, targets ...reflect.Type) ([]*Receiver, error) {
	if len(targets) == 0 {
		return nil, ErrInvalidTarget
	}
	if err := checkConnect(name, fn); err != nil {
		return nil, err
	}

	visited := make(map[reflect.Type]bool)
	var receivers []*Receiver
	frontier := targets
	for len(frontier) > 0 {
		var next []reflect.Type
		for _, t := range frontier {
			t = normalize(t)
			if visited[t] {
				continue
			}
			visited[t] = true

			r, err := h.connectType(t, name, fn, true)
			if err != nil {
				return receivers, err
			}
			receivers = append(receivers, r)
			next = append(next, h.subtypes(t)...)
		}
		frontier = next
	}
	return receivers, nil
}

func (h *Hub) connectType(t reflect.Type, name string, fn Handler, transitive bool) (*Receiver, error) {
	if err := checkConnect(name, fn); err != nil {
		return nil, err
	}
	info, err := h.ensureDeclared(t)
	if err != nil {
		return nil, err
	}
	entry, ok := info.table.Lookup(name)
	if !ok {
		return nil, h.undefined(context.Background(), info.typ, name)
	}

	r := entry.Channel().Connect(fn)
	observability.LogConnect(h.logger, typeName(info.typ), name, transitive)
	h.metrics.RecordConnect(context.Background(), typeName(info.typ), name)
	return r, nil
}

func (h *Hub) undefined(ctx context.Context, t reflect.Type, name string) error {
	observability.LogSignalNotDefined(h.logger, typeName(t), name)
	h.metrics.RecordUndefined(ctx, typeName(t), name)
	return &SignalError{Type: t, Signal: name, Err: ErrSignalNotDefined}
}

func checkConnect(name string, fn Handler) error {
	if name == "" {
		return ErrEmptyName
	}
	if fn == nil {
		return ErrNilHandler
	}
	return nil
}
