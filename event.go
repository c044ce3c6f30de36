package herald

import (
	"reflect"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mknell/herald/payload"
)

// timeNow is a variable to allow testing with fixed timestamps.
var timeNow = time.Now

// Event is a typed observable that delivers payloads to subscribed
// handlers in priority order. Higher-priority handlers run first; among
// handlers with equal priority, the most recently subscribed runs first.
//
// An Event performs no locking. It is owned by a single goroutine;
// callers that share an event across goroutines must serialize access
// themselves.
type Event[T payload.Carrier] struct {
	// name identifies the event in stamps and log records.
	// Immutable after New; empty for unnamed events.
	name string

	// handlers is kept sorted by descending priority at all times.
	handlers []Handler[T]

	// log receives subscribe and broadcast debug records.
	log zerolog.Logger

	// stats accumulates broadcast counters.
	stats Stats
}

// New creates an empty event with the given name. Pass "" for an
// unnamed event; such events display as "Unnamed" and stamp payloads
// with an empty event name.
func New[T payload.Carrier](name string, opts ...Option) *Event[T] {
	cfg := defaultEventConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Event[T]{
		name: name,
		log:  cfg.log,
	}
}

// Name returns the event's name, empty if unnamed.
func (e *Event[T]) Name() string {
	return e.name
}

// String returns "name:payload type" for logging and debugging, with
// "Unnamed" in place of an empty name.
func (e *Event[T]) String() string {
	return e.displayName() + ":" + typeName[T]()
}

// Subscribe adds h to the event, keeping handlers sorted by descending
// priority. Among handlers with equal priority the newest is placed
// first, so it dispatches before the others. Subscribing the same
// callback more than once is allowed; each subscription is dispatched
// and must be removed separately.
func (e *Event[T]) Subscribe(h Handler[T]) error {
	if h.Callback == nil {
		return ErrNilCallback
	}
	i := sort.Search(len(e.handlers), func(i int) bool {
		return e.handlers[i].Priority <= h.Priority
	})
	e.handlers = append(e.handlers, Handler[T]{})
	copy(e.handlers[i+1:], e.handlers[i:])
	e.handlers[i] = h
	e.log.Debug().
		Str("event", e.String()).
		Int("priority", int(h.Priority)).
		Int("subscribers", len(e.handlers)).
		Msg("Handler subscribed")
	return nil
}

// SubscribeFunc wraps cb in a Handler and subscribes it.
func (e *Event[T]) SubscribeFunc(cb Callback[T], priority Priority) error {
	return e.Subscribe(Handler[T]{Callback: cb, Priority: priority})
}

// Unsubscribe removes the first handler whose callback equals h's and
// returns true. It returns false when no handler matches; that is a
// no-op, not an error. Priority is ignored during matching, so the
// handler value may be rebuilt with any priority.
func (e *Event[T]) Unsubscribe(h Handler[T]) bool {
	for i := range e.handlers {
		if e.handlers[i].Equal(h) {
			e.handlers = append(e.handlers[:i], e.handlers[i+1:]...)
			e.log.Debug().
				Str("event", e.String()).
				Int("subscribers", len(e.handlers)).
				Msg("Handler unsubscribed")
			return true
		}
	}
	return false
}

// UnsubscribeFunc removes the first handler holding cb.
func (e *Event[T]) UnsubscribeFunc(cb Callback[T]) bool {
	return e.Unsubscribe(Handler[T]{Callback: cb})
}

// UnsubscribeAll removes every handler. Idempotent.
func (e *Event[T]) UnsubscribeAll() {
	if len(e.handlers) == 0 {
		return
	}
	e.handlers = nil
	e.log.Debug().
		Str("event", e.String()).
		Msg("All handlers unsubscribed")
}

// SubscriberCount returns the number of subscribed handlers.
func (e *Event[T]) SubscriberCount() int {
	return len(e.handlers)
}

// Broadcast delivers p to every subscribed handler, in priority order,
// synchronously on the calling goroutine.
//
// With no subscribers it returns (false, nil) immediately and p is not
// touched. Otherwise p is stamped exactly once, in place, before the
// first handler runs, and the call returns true even when a handler
// fails. The first non-nil handler error aborts the remaining handlers
// and is returned unmodified.
//
// Handlers run against the live subscriber list, not a snapshot. A
// handler that subscribes or unsubscribes during the broadcast changes
// what the remainder of that same broadcast sees; do not rely on either
// outcome.
func (e *Event[T]) Broadcast(p T) (bool, error) {
	if len(e.handlers) == 0 {
		return false, nil
	}
	s := e.newStamp()
	p.ApplyStamp(s)
	e.stats.Broadcasts++
	e.log.Debug().
		Str("event", e.String()).
		Str("broadcast_id", s.BroadcastID).
		Int("subscribers", len(e.handlers)).
		Msg("Broadcasting event")
	return true, e.dispatch(p)
}

// BroadcastAny is the dynamically-typed entry to Broadcast, for callers
// that hold a payload behind the Carrier interface. A nil payload is
// replaced with a fresh Envelope, as in Signal.
//
// The payload's runtime type is checked once, after stamping and before
// any handler runs. On mismatch no handler is invoked and the call
// returns true together with a TypeMismatchError naming the event's
// expected payload type.
func (e *Event[T]) BroadcastAny(p payload.Carrier) (bool, error) {
	if p == nil {
		return e.Signal()
	}
	if len(e.handlers) == 0 {
		return false, nil
	}
	s := e.newStamp()
	p.ApplyStamp(s)
	e.stats.Broadcasts++
	e.log.Debug().
		Str("event", e.String()).
		Str("broadcast_id", s.BroadcastID).
		Int("subscribers", len(e.handlers)).
		Msg("Broadcasting event")
	typed, ok := p.(T)
	if !ok {
		e.stats.TypeMismatches++
		return true, &TypeMismatchError{
			Event:    e.displayName(),
			Expected: typeName[T](),
			Got:      reflect.TypeOf(p).String(),
		}
	}
	return true, e.dispatch(typed)
}

// Signal broadcasts without a caller-supplied payload. A fresh Envelope
// is constructed, stamped and delivered through the dynamically-typed
// path, so events declared over an Envelope subtype report a
// TypeMismatchError instead of delivering a payload of the wrong type.
func (e *Event[T]) Signal() (bool, error) {
	return e.BroadcastAny(payload.New())
}

// Notify is an alias for Broadcast with an identical contract, for call
// sites that read better as notification.
func (e *Event[T]) Notify(p T) (bool, error) {
	return e.Broadcast(p)
}

// Stats returns a copy of the event's counters.
func (e *Event[T]) Stats() Stats {
	return e.stats
}

// dispatch invokes the handlers in their current order. It iterates the
// live slice by index so that mid-broadcast mutation is observed rather
// than defended against.
func (e *Event[T]) dispatch(p T) error {
	for i := 0; i < len(e.handlers); i++ {
		e.stats.HandlerCalls++
		if err := e.handlers[i].Callback(p); err != nil {
			e.stats.HandlerErrors++
			return err
		}
	}
	return nil
}

// newStamp builds the stamp for one broadcast.
func (e *Event[T]) newStamp() payload.Stamp {
	return payload.Stamp{
		EventName:   e.name,
		OccurredAt:  timeNow().UTC(),
		BroadcastID: uuid.NewString(),
	}
}

// displayName returns the event's name, or "Unnamed" when it has none.
func (e *Event[T]) displayName() string {
	if e.name == "" {
		return "Unnamed"
	}
	return e.name
}

// typeName returns the payload type's name as the reflect package
// renders it, e.g. "*payload.Envelope".
func typeName[T payload.Carrier]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
