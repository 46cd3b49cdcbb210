package typesignal

import (
	"context"
	"reflect"
	"time"
)

// Emission is what handlers receive. Cascade edges forward the same value,
// so base-level and universal handlers see the original senders, payload
// and source.
//
// Each receiver gets its own copy of Senders and Payload. The values inside
// them are shared.
type Emission struct {
	// ID uniquely identifies the emission.
	ID string

	// Schema is the schema passed to the emit call.
	Schema Schema

	// Declared is the schema the source type declares for the signal. Its
	// cascade flag decides forwarding, whatever Schema says.
	Declared Schema

	// Senders defaults to the emitting type or instance.
	Senders []any

	// Payload holds the keyword values given to the emit call. Never nil.
	Payload map[string]any

	// Source is the type whose channel the emission started on.
	Source reflect.Type

	// Time is when the emission started.
	Time time.Time

	ctx context.Context
}

// Sender returns the first sender, or nil if there is none.
func (e Emission) Sender() any {
	if len(e.Senders) == 0 {
		return nil
	}
	return e.Senders[0]
}

// Value returns one payload value.
func (e Emission) Value(key string) (any, bool) {
	v, ok := e.Payload[key]
	return v, ok
}

// Context returns the context the emission was made with. When tracing is
// enabled it carries the emission span.
func (e Emission) Context() context.Context {
	if e.ctx == nil {
		return context.Background()
	}
	return e.ctx
}

// copyFor returns e with its own Senders and Payload.
func (e Emission) copyFor() Emission {
	if e.Senders != nil {
		e.Senders = append([]any(nil), e.Senders...)
	}
	payload := make(map[string]any, len(e.Payload))
	for k, v := range e.Payload {
		payload[k] = v
	}
	e.Payload = payload
	return e
}
