package typesignal

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors. Match them with errors.Is.
var (
	// ErrSignalNotDefined indicates a connect or emit named a signal missing
	// from the type's table, even after lazy declaration.
	ErrSignalNotDefined = errors.New("signal not defined")

	// ErrInvalidTarget indicates a transitive connection without target types.
	ErrInvalidTarget = errors.New("at least one target type is required")

	// ErrNoNamespace indicates introspection of a type that was never declared.
	ErrNoNamespace = errors.New("no signals declared")

	// ErrNotEmitter indicates a type that does not embed Emitter.
	ErrNotEmitter = errors.New("type does not embed typesignal.Emitter")

	// ErrNilHandler indicates a connect call without a handler.
	ErrNilHandler = errors.New("handler is required")

	// ErrEmptyName indicates a connect call without a signal name.
	ErrEmptyName = errors.New("signal name is required")
)

// SignalError wraps errors about one signal on one type.
type SignalError struct {
	// Type is the type the signal was looked up on.
	Type reflect.Type
	// Signal is the signal name.
	Signal string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *SignalError) Error() string {
	return fmt.Sprintf("signal %q on %s: %v", e.Signal, typeName(e.Type), e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *SignalError) Unwrap() error {
	return e.Err
}

// TypeError wraps errors about a type as a whole.
type TypeError struct {
	// Type is the offending type. Nil when the caller passed a nil value.
	Type reflect.Type
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	if e.Type == nil {
		return fmt.Sprintf("nil type: %v", e.Err)
	}
	return fmt.Sprintf("type %s: %v", e.Type, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *TypeError) Unwrap() error {
	return e.Err
}
