// Package registry provides a generic, thread-safe, insertion-ordered
// registry for values indexed by key.
//
// typesignal uses it for every name-keyed container: the base namespace of
// channels and each type's event table. Both rely on two properties:
//
//   - GetOrCreate is atomic, so a name maps to exactly one value for the
//     lifetime of the registry.
//   - Keys, Values and Range follow first-registration order, so listings
//     are deterministic.
//
// # Basic Usage
//
//	r := registry.New[string, int]()
//	r.Register("one", 1)
//	r.Register("two", 2)
//
//	r.Keys() // [one two]
//
// # Lazy Initialization
//
//	ch, created := channels.GetOrCreate("created", func() *Channel {
//	    return newChannel("created")
//	})
//
// The factory runs while the registry's write lock is held; it must not
// call back into the same registry.
package registry
