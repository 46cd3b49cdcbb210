package typesignal

import "reflect"

// Default is the process-wide hub behind the package-level functions.
var Default = New()

// Register registers t on the Default hub.
func Register(t reflect.Type) error {
	return Default.Register(t)
}

// Declare declares schemas on t in the Default hub.
func Declare(t reflect.Type, schemas ...Schema) (*Table, error) {
	return Default.Declare(t, schemas...)
}

// DeclareNames declares bare names on t in the Default hub.
func DeclareNames(t reflect.Type, names ...string) (*Table, error) {
	return Default.DeclareNames(t, names...)
}

// Connect connects fn in the Default hub.
func Connect(name string, fn Handler, targets ...reflect.Type) ([]*Receiver, error) {
	return Default.Connect(name, fn, targets...)
}

// ConnectTransitive connects fn to targets and their current subtypes in
// the Default hub.
func ConnectTransitive(name string, fn Handler, targets ...reflect.Type) ([]*Receiver, error) {
	return Default.ConnectTransitive(name, fn, targets...)
}

// EmitType emits at type level in the Default hub.
func EmitType(t reflect.Type, schema Schema, opts ...EmitOption) error {
	return Default.EmitType(t, schema, opts...)
}

// Emit emits at instance level in the Default hub.
func Emit(obj any, schema Schema, opts ...EmitOption) error {
	return Default.Emit(obj, schema, opts...)
}

// Events returns t's table in the Default hub.
func Events(t reflect.Type) (*Table, error) {
	return Default.Events(t)
}
