package typesignal_test

import (
	"sync"

	"github.com/randalmurphal/typesignal/pkg/typesignal"
)

type Animal struct {
	typesignal.Emitter
	Name string
}

type Dog struct {
	Animal
}

type Cat struct {
	Animal
}

type Puppy struct {
	Dog
}

type Order struct {
	typesignal.Emitter
	ID string
}

func (Order) Signals() []typesignal.Schema {
	return []typesignal.Schema{
		typesignal.Signal("created"),
		typesignal.Cascading("paid"),
	}
}

type RushOrder struct {
	Order
}

type Base struct {
	typesignal.Emitter
}

type Left struct {
	Base
}

type Right struct {
	Base
}

type Joined struct {
	typesignal.Emitter
	Left
	Right
}

// Ambiguous embeds two emitters without embedding Emitter itself.
type Ambiguous struct {
	Left
	Right
}

type Plain struct {
	Name string
}

// collector records the emissions it receives.
type collector struct {
	mu        sync.Mutex
	emissions []typesignal.Emission
}

func (c *collector) handle(e typesignal.Emission) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.emissions = append(c.emissions, e)
}

func (c *collector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.emissions)
}

func (c *collector) last() typesignal.Emission {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.emissions[len(c.emissions)-1]
}

func (c *collector) names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.emissions))
	for i, e := range c.emissions {
		out[i] = e.Schema.Name()
	}
	return out
}

var (
	animalType    = typesignal.TypeOf[Animal]()
	dogType       = typesignal.TypeOf[Dog]()
	catType       = typesignal.TypeOf[Cat]()
	puppyType     = typesignal.TypeOf[Puppy]()
	orderType     = typesignal.TypeOf[Order]()
	rushOrderType = typesignal.TypeOf[RushOrder]()
)
