package payload

import "time"

// Stamp carries the delivery metadata an event writes onto a payload at
// broadcast time. A stamp is produced once per broadcast, immediately
// before the first handler runs, and is applied to the caller's payload
// in place.
type Stamp struct {
	// EventName is the name of the event performing the broadcast,
	// empty when the event is unnamed.
	EventName string

	// OccurredAt is the wall-clock time the broadcast started, in UTC.
	OccurredAt time.Time

	// BroadcastID uniquely identifies this broadcast. Handlers and
	// downstream sinks can use it to correlate log lines for a single
	// delivery.
	BroadcastID string
}

// Carrier is the contract every broadcastable payload satisfies.
// Embedding Envelope in a struct satisfies it.
type Carrier interface {
	// ApplyStamp records broadcast metadata on the payload. It is
	// called exactly once per delivered broadcast, before any handler
	// observes the payload.
	ApplyStamp(Stamp)
}

// Envelope is the base payload type. It records which event delivered it
// and when. Domain payloads embed Envelope and add their own fields:
//
//	type ScoreChanged struct {
//	    payload.Envelope
//	    Delta int `json:"delta"`
//	}
type Envelope struct {
	EventName   string    `json:"event_name"`
	OccurredAt  time.Time `json:"occurred_at"`
	BroadcastID string    `json:"broadcast_id"`
}

// New returns an empty Envelope ready to be broadcast. The envelope's
// fields are populated by the event at broadcast time.
func New() *Envelope {
	return &Envelope{}
}

// ApplyStamp implements Carrier.
func (e *Envelope) ApplyStamp(s Stamp) {
	e.EventName = s.EventName
	e.OccurredAt = s.OccurredAt
	e.BroadcastID = s.BroadcastID
}
