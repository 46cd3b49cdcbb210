package typesignal

// Schema identifies one declarable signal: a name, plus whether emissions
// cascade to the base-level channel of the same name.
//
// Schemas are immutable values. Two schemas are Equal when their names
// match; the cascade flag is not part of identity.
type Schema struct {
	name    string
	cascade bool
}

// NewSchema creates a schema.
func NewSchema(name string, cascade bool) Schema {
	return Schema{name: name, cascade: cascade}
}

// Signal creates a non-cascading schema. It is how bare names are
// normalized.
func Signal(name string) Schema {
	return Schema{name: name}
}

// Cascading creates a schema whose emissions are also forwarded to the
// base-level channel of the same name.
func Cascading(name string) Schema {
	return Schema{name: name, cascade: true}
}

// Name returns the signal name.
func (s Schema) Name() string {
	return s.name
}

// Cascade reports whether the signal forwards to the base level.
func (s Schema) Cascade() bool {
	return s.cascade
}

// Equal reports whether both schemas name the same signal.
func (s Schema) Equal(other Schema) bool {
	return s.name == other.name
}

// String returns the signal name.
func (s Schema) String() string {
	return s.name
}
