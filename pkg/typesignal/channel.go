package typesignal

import (
	"reflect"
	"sync"

	"github.com/randalmurphal/typesignal/pkg/typesignal/registry"
)

// Handler receives emissions. Handlers run synchronously on the emitting
// goroutine, in connection order.
type Handler func(Emission)

// ReceiverKind distinguishes user handlers from the standing cascade edges
// a hub wires at declaration time.
type ReceiverKind int

// Receiver kinds.
const (
	// HandlerReceiver is a handler connected by application code.
	HandlerReceiver ReceiverKind = iota
	// CascadeReceiver forwards to the base-level channel of the same name.
	CascadeReceiver
	// UniversalReceiver forwards to the EventTriggered channel.
	UniversalReceiver
)

// String returns a readable name for the kind.
func (k ReceiverKind) String() string {
	switch k {
	case HandlerReceiver:
		return "handler"
	case CascadeReceiver:
		return "cascade"
	case UniversalReceiver:
		return "universal"
	default:
		return "unknown"
	}
}

// Receiver is one registration on a channel.
type Receiver struct {
	id     uint64
	kind   ReceiverKind
	target string
	fn     Handler
}

// ID returns the receiver's id, unique within its channel.
func (r *Receiver) ID() uint64 {
	return r.id
}

// Kind returns what kind of receiver this is.
func (r *Receiver) Kind() ReceiverKind {
	return r.kind
}

// Target returns the name of the base-level channel an edge forwards to.
// It is empty for handlers.
func (r *Receiver) Target() string {
	return r.target
}

// Channel carries one named signal's receivers and delivers emissions to
// them.
type Channel struct {
	name  string
	scope reflect.Type

	mu        sync.Mutex
	receivers []*Receiver
	nextID    uint64
}

func newChannel(name string, scope reflect.Type) *Channel {
	return &Channel{name: name, scope: scope}
}

// Name returns the signal name.
func (c *Channel) Name() string {
	return c.name
}

// Scope returns the type owning the channel, or nil for base-level
// channels.
func (c *Channel) Scope() reflect.Type {
	return c.scope
}

// Connect registers fn. Connecting the same function twice registers it
// twice.
func (c *Channel) Connect(fn Handler) *Receiver {
	return c.attach(HandlerReceiver, "", fn)
}

func (c *Channel) attach(kind ReceiverKind, target string, fn Handler) *Receiver {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	r := &Receiver{id: c.nextID, kind: kind, target: target, fn: fn}
	c.receivers = append(c.receivers, r)
	return r
}

// Receivers returns a snapshot of the registered receivers in connection
// order.
func (c *Channel) Receivers() []*Receiver {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*Receiver, len(c.receivers))
	copy(out, c.receivers)
	return out
}

// Send delivers e to every receiver registered when Send was called and
// returns how many were invoked. No lock is held while receivers run, so
// a receiver may connect or emit again. A receiver changing the payload or
// senders it got does not affect the others.
func (c *Channel) Send(e Emission) int {
	receivers := c.Receivers()
	for _, r := range receivers {
		r.fn(e.copyFor())
	}
	return len(receivers)
}

// forwardTo returns a handler relaying every emission to target unchanged.
func forwardTo(target *Channel) Handler {
	return func(e Emission) {
		target.Send(e)
	}
}

// Namespace maps names to channels. A name is bound to exactly one channel
// for the namespace's lifetime.
type Namespace struct {
	channels *registry.Registry[string, *Channel]
}

// NewNamespace creates an empty base-level namespace.
func NewNamespace() *Namespace {
	return &Namespace{channels: registry.New[string, *Channel]()}
}

// Channel returns the channel for name, creating it on first use.
func (n *Namespace) Channel(name string) *Channel {
	ch, _ := n.channels.GetOrCreate(name, func() *Channel {
		return newChannel(name, nil)
	})
	return ch
}

// Lookup returns the channel for name without creating it.
func (n *Namespace) Lookup(name string) (*Channel, bool) {
	return n.channels.Get(name)
}

// Names returns the channel names in creation order.
func (n *Namespace) Names() []string {
	return n.channels.Keys()
}
