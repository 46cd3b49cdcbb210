package typesignal

import (
	"reflect"
)

// Emitter grants the emitter capability to any struct that embeds it.
//
//	type Order struct {
//	    typesignal.Emitter
//	    ID string
//	}
//
// Emitter types embedded in another struct become its ancestors. A struct
// that embeds two emitter types must also embed Emitter directly, because
// Go does not promote a method that is ambiguous at the same depth.
type Emitter struct{}

func (Emitter) typesignalEmitter() {}

// capable is satisfied only through an embedded Emitter.
type capable interface {
	typesignalEmitter()
}

// Declarer is implemented by emitter types that list their own signals.
// When a hub declares a type lazily, it calls Signals on a zero value.
type Declarer interface {
	Signals() []Schema
}

var (
	emitterType  = reflect.TypeOf(Emitter{})
	capableType  = reflect.TypeOf((*capable)(nil)).Elem()
	declarerType = reflect.TypeOf((*Declarer)(nil)).Elem()
)

// TypeOf returns the type of T with any pointer indirection removed.
//
//	typesignal.TypeOf[*Order]() == typesignal.TypeOf[Order]()
func TypeOf[T any]() reflect.Type {
	return normalize(reflect.TypeOf((*T)(nil)).Elem())
}

// IsEmitter reports whether t carries the Emitter capability.
// The Emitter marker itself is not an emitter type.
func IsEmitter(t reflect.Type) bool {
	t = normalize(t)
	if t == nil || t == emitterType || t.Kind() != reflect.Struct {
		return false
	}
	return t.Implements(capableType) || reflect.PointerTo(t).Implements(capableType)
}

func normalize(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "base"
	}
	return t.String()
}

// directParents returns the emitter types t embeds, in field order.
func directParents(t reflect.Type) []reflect.Type {
	if t.Kind() != reflect.Struct {
		return nil
	}
	var parents []reflect.Type
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.Anonymous {
			continue
		}
		ft := normalize(field.Type)
		if IsEmitter(ft) {
			parents = append(parents, ft)
		}
	}
	return parents
}

// linearize returns t followed by its emitter ancestors, most derived
// first. Ancestors are walked depth-first in field order; a type reached
// more than once keeps only its last position, so a shared base comes
// after every type that embeds it.
func linearize(t reflect.Type) []reflect.Type {
	var walk []reflect.Type
	onPath := make(map[reflect.Type]bool)

	var visit func(reflect.Type)
	visit = func(c reflect.Type) {
		if onPath[c] {
			return
		}
		onPath[c] = true
		walk = append(walk, c)
		for _, p := range directParents(c) {
			visit(p)
		}
		onPath[c] = false
	}
	visit(t)

	last := make(map[reflect.Type]int, len(walk))
	for i, c := range walk {
		last[c] = i
	}
	out := make([]reflect.Type, 0, len(last))
	for i, c := range walk {
		if last[c] == i {
			out = append(out, c)
		}
	}
	return out
}

// declaredBy returns the signals t lists through Declarer, if any.
func declaredBy(t reflect.Type) []Schema {
	if !reflect.PointerTo(t).Implements(declarerType) {
		return nil
	}
	return reflect.New(t).Interface().(Declarer).Signals()
}
