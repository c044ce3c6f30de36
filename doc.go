// Package herald provides a typed, priority-ordered in-process
// publish/subscribe primitive.
//
// An Event[T] owns an ordered collection of handlers, each pairing a
// callback with an integer priority. Broadcasting delivers one payload
// to every handler, synchronously, on the calling goroutine, in a
// deterministic order. There is no broker, no topic routing and no
// delivery guarantee beyond the in-process call itself; herald is the
// building block components hand each other when they want observable
// state without coupling.
//
// # Priority Ordering
//
// Handlers execute in descending priority order:
//
//   - PriorityHighest (1000): state keepers, validators - executes first
//   - PriorityHigh (500): reactive domain logic
//   - PriorityNormal (0): default tier
//   - PriorityLow (-500): derived views, projections
//   - PriorityLowest (-1000): metrics, logging - executes last
//
// Any integer is accepted, including values outside the named range.
// Among handlers with equal priority the most recently subscribed one
// executes first.
//
// # Broadcast Protocol
//
// Broadcast on an event with no subscribers returns (false, nil) and
// leaves the payload untouched. With at least one subscriber the
// payload is stamped exactly once - event name, UTC timestamp and a
// broadcast ID written in place, mutating the caller's value - before
// the first handler runs, and the call returns true.
//
// The first handler to return a non-nil error aborts the handlers after
// it; the error reaches the broadcaster unmodified. The engine adds no
// retry, no isolation between handlers and no panic recovery.
//
// BroadcastAny accepts a payload behind the Carrier interface and
// performs the type check Broadcast gets from the compiler: a payload
// of the wrong runtime type yields a TypeMismatchError naming the
// expected type, and no handler runs. Signal broadcasts a fresh
// Envelope for events that carry no domain data.
//
// # Basic Usage
//
//	type PointsScored struct {
//	    payload.Envelope
//	    Team   string
//	    Points int
//	}
//
//	score := herald.New[*PointsScored]("score")
//
//	err := score.SubscribeFunc(func(p *PointsScored) error {
//	    fmt.Printf("%s scored %d at %s\n", p.Team, p.Points, p.OccurredAt)
//	    return nil
//	}, herald.PriorityHigh)
//
//	delivered, err := score.Broadcast(&PointsScored{Team: "home", Points: 2})
//
// # Unsubscription and Handler Identity
//
// Handlers are equal when they hold the same callback; priority is
// ignored. Unsubscribe therefore needs only the function back:
//
//	score.SubscribeFunc(onScore, herald.PriorityHigh)
//	score.UnsubscribeFunc(onScore) // true, regardless of priority
//
// Identity is the function's code pointer, which has two consequences.
// An anonymous callback the caller never retained cannot be matched
// afterwards and can only be removed via UnsubscribeAll. And distinct
// closures created from the same function literal share a code pointer,
// so they are indistinguishable to Unsubscribe. Retain the Handler or
// the callback value for anything you intend to remove individually.
//
// # Streaming
//
// SubscribeStream forwards every delivered payload to a Sink, bridging
// broadcasts into a push-based pipeline. The stream package provides
// sinks for Go channels, watermill publishers and websocket
// connections. The event never closes a sink, even when its last
// subscriber is gone; sink lifecycle belongs to the caller.
//
// # Mid-Broadcast Mutation
//
// Dispatch iterates the live handler collection, not a snapshot. A
// callback that subscribes or unsubscribes handlers on its own event
// changes what the remainder of that broadcast sees. The effect is
// implementation-defined; do not rely on it.
//
// # Thread Safety
//
// An Event is not safe for concurrent use. Broadcast runs entirely on
// the calling goroutine and the engine takes no locks; callers that
// share an event across goroutines must serialize access externally.
//
// # Subpackages
//
//   - payload: the Carrier contract, Stamp and the embeddable Envelope
//   - stream: Sink implementations (channel, watermill, websocket)
package herald
