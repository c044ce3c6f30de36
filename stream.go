package herald

import "github.com/mknell/herald/payload"

// Sink is a push target for payloads delivered through SubscribeStream.
// Implementations decide what accepting a payload means: buffering it
// on a channel, publishing it to a broker, writing it to a socket. The
// event never closes a sink; its lifecycle belongs to the caller.
type Sink[T payload.Carrier] interface {
	// Push accepts one stamped payload. A non-nil error aborts the
	// broadcast that delivered it, like any other handler error.
	Push(p T) error
}

// SubscribeStream subscribes a handler that forwards every delivered
// payload to s. The forwarding callback is synthesized internally and
// not exposed, so a stream subscription cannot be removed individually
// with Unsubscribe; remove it together with everything else via
// UnsubscribeAll.
func (e *Event[T]) SubscribeStream(priority Priority, s Sink[T]) error {
	if s == nil {
		return ErrNilSink
	}
	return e.SubscribeFunc(func(p T) error { return s.Push(p) }, priority)
}
