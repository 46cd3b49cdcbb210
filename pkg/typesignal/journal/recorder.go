package journal

import (
	"log/slog"
	"sync/atomic"

	"github.com/randalmurphal/typesignal/pkg/typesignal"
	"github.com/randalmurphal/typesignal/pkg/typesignal/observability"
)

// Recorder appends every emission of a hub to a store.
type Recorder struct {
	store    Store
	logger   *slog.Logger
	receiver *typesignal.Receiver
	recorded atomic.Int64
	failures atomic.Int64
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithLogger sets the logger append failures are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) {
		r.logger = logger
	}
}

// Attach connects a recorder to the universal channel of h.
// Emissions are appended synchronously from the emitting goroutine.
func Attach(h *typesignal.Hub, store Store, opts ...Option) (*Recorder, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	r := &Recorder{store: store}
	for _, opt := range opts {
		opt(r)
	}

	receiver, err := h.ConnectBase(typesignal.EventTriggered, r.record)
	if err != nil {
		return nil, err
	}
	r.receiver = receiver
	return r, nil
}

func (r *Recorder) record(e typesignal.Emission) {
	if _, err := r.store.Append(NewRecord(e)); err != nil {
		r.failures.Add(1)
		observability.LogRecordFailure(r.logger, e.Schema.Name(), e.ID, err)
		return
	}
	r.recorded.Add(1)
}

// Receiver returns the recorder's registration on the universal channel.
func (r *Recorder) Receiver() *typesignal.Receiver {
	return r.receiver
}

// Store returns the store records are appended to.
func (r *Recorder) Store() Store {
	return r.store
}

// Recorded returns how many emissions were appended.
func (r *Recorder) Recorded() int64 {
	return r.recorded.Load()
}

// Failures returns how many appends failed.
func (r *Recorder) Failures() int64 {
	return r.failures.Load()
}
