// Package stream provides Sink implementations that carry herald
// broadcasts out of the broadcasting goroutine.
//
// # Sinks
//
// Three adapters are provided:
//
//   - Channel: forwards payloads to a Go channel without blocking the
//     broadcast. A full buffer yields ErrChannelFull.
//   - Publisher: marshals payloads to JSON and publishes them onto a
//     watermill message.Publisher under a fixed topic.
//   - WebSocket: writes payloads as JSON text messages to a gorilla
//     websocket connection.
//
// All adapters satisfy herald.Sink and are attached with
// Event.SubscribeStream:
//
//	updates := make(chan *PointsScored, 64)
//	score.SubscribeStream(herald.PriorityLowest, stream.NewChannel(updates))
//
// # Lifecycle
//
// Sinks hold resources the event knows nothing about. The event never
// closes a sink's channel, publisher or connection; the caller that
// created the resource closes it after unsubscribing.
//
// # Errors
//
// A sink error aborts the broadcast that delivered the payload, exactly
// like an error from any other handler. Sinks that talk to slow or
// unreliable targets belong at low priority so an outage cannot starve
// in-process subscribers.
package stream
