package herald

import "errors"

// Sentinel errors for event operations.
var (
	// ErrNilCallback is returned when a handler with a nil callback is subscribed.
	ErrNilCallback = errors.New("handler callback cannot be nil")

	// ErrNilSink is returned when a nil sink is passed to SubscribeStream.
	ErrNilSink = errors.New("stream sink cannot be nil")

	// ErrTypeMismatch is returned when a broadcast payload is not of the event's expected type.
	ErrTypeMismatch = errors.New("incorrect broadcast argument")
)

// TypeMismatchError reports a broadcast whose payload did not match the
// event's expected payload type. It matches ErrTypeMismatch under errors.Is.
type TypeMismatchError struct {
	// Event is the name of the event that rejected the payload.
	Event string

	// Expected is the payload type the event was constructed for.
	Expected string

	// Got is the dynamic type of the rejected payload.
	Got string
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return "incorrect broadcast argument for event " + e.Event + ": expected " + e.Expected + ", got " + e.Got
}

// Is allows errors.Is to match TypeMismatchError with ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
