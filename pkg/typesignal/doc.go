/*
Package typesignal provides typed, hierarchy-aware signals for Go types.

# Overview

A type declares named signals. Observers attach handlers to a signal on one
type, on a type and every subtype currently known, or on the type-agnostic
base level. Every emission is delivered synchronously on the emitting
goroutine, then forwarded along two standing cascade edges:

  - to the base-level channel of the same name, when the signal cascades
  - to the universal EventTriggered channel, always

Cascade edges only point from type level to base level, so they never loop
back into a type-level channel.

# Emitter Types

A type opts in by embedding Emitter. Emitter types embedded in another
struct are its ancestors, and their signals are inherited:

	type Animal struct {
	    typesignal.Emitter
	    Name string
	}

	type Dog struct {
	    Animal
	}

	h := typesignal.New()
	h.Declare(typesignal.TypeOf[Animal](), typesignal.Cascading("born"))
	h.DeclareNames(typesignal.TypeOf[Dog](), "barked")
	// Dog's table now holds "born" (origin Animal) and "barked".

When an ancestor and a subtype both declare a name, the ancestor's schema
wins. A subtype cannot change an inherited signal's cascade flag.

Types can list their own signals by implementing Declarer. The hub calls it
when it declares a type lazily, which happens on the first connect or emit
touching the type:

	func (Order) Signals() []typesignal.Schema {
	    return []typesignal.Schema{typesignal.Signal("created")}
	}

# Connecting

	// One type
	h.ConnectType(typesignal.TypeOf[Dog](), "barked", onBark)

	// Base level: receives cascaded "born" emissions from every type
	h.ConnectBase("born", onAnyBirth)

	// Every emission of every signal
	h.ConnectBase(typesignal.EventTriggered, audit)

	// A type and all of its currently registered subtypes
	h.ConnectTransitive("born", onBirth, typesignal.TypeOf[Animal]())

Go cannot enumerate the types of a program, so the hub only knows subtypes
that were registered with it: through Register, Declare, Connect or Emit.
ConnectTransitive walks a snapshot; subtypes registered later are not
connected.

# Emitting

	// Type level, sender is the type
	h.EmitType(typesignal.TypeOf[Dog](), typesignal.Signal("barked"))

	// Instance level, sender is the instance
	h.Emit(&rex, typesignal.Signal("barked"), typesignal.WithValue("volume", 11))

	// Conditional
	h.Emit(&rex, typesignal.Signal("barked"), typesignal.When(rex.Awake))

Handlers receive an Emission carrying the schema passed to the emit call,
the senders, the payload and the source type.

# Errors

Connecting to or emitting a signal a type does not declare fails with
ErrSignalNotDefined, after a lazy declaration attempt. ConnectTransitive
without targets fails with ErrInvalidTarget. Events on a type never declared
fails with ErrNoNamespace. Types that do not embed Emitter fail with
ErrNotEmitter.

# Concurrency

Handlers run synchronously, in connection order, with no hub lock held: a
handler may connect or emit again. Nothing guards against a handler that
re-emits the signal it handles.

# Default Hub

Default is a process-wide hub; the package-level functions use it.
*/
package typesignal
