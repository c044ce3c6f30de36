package herald

import (
	"reflect"

	"github.com/mknell/herald/payload"
)

// Callback is the function invoked for each delivered broadcast.
// The payload has already been stamped when the callback runs.
// A non-nil error aborts the broadcast; handlers later in the order
// are not invoked.
type Callback[T payload.Carrier] func(p T) error

// Handler pairs a callback with a priority. It is the unit of storage
// inside an event and the unit of equality for unsubscription.
type Handler[T payload.Carrier] struct {
	// Callback receives the stamped payload.
	Callback Callback[T]

	// Priority orders the handler among the event's subscribers.
	// Higher values run first. The zero value is PriorityNormal.
	Priority Priority
}

// NewHandler returns a handler pairing cb with the given priority.
func NewHandler[T payload.Carrier](cb Callback[T], priority Priority) Handler[T] {
	return Handler[T]{Callback: cb, Priority: priority}
}

// Equal reports whether both handlers hold the same callback.
// Priority is excluded: a handler rebuilt around the same function
// matches regardless of priority, so unsubscription only needs the
// callback back. Comparison is by function identity, not closure
// state; distinct closures made from the same function literal are
// indistinguishable.
func (h Handler[T]) Equal(other Handler[T]) bool {
	return callbackPointer(h.Callback) == callbackPointer(other.Callback)
}

// callbackPointer returns the code pointer backing cb, or 0 for nil.
func callbackPointer[T payload.Carrier](cb Callback[T]) uintptr {
	if cb == nil {
		return 0
	}
	return reflect.ValueOf(cb).Pointer()
}
