// Package payload defines the data carriers that travel through herald
// events.
//
// # Carriers and Stamping
//
// Every value delivered by a broadcast implements Carrier. When an event
// with at least one subscriber broadcasts, it builds a Stamp (event name,
// UTC timestamp, broadcast ID) and applies it to the payload in place
// before any handler runs. A broadcast with no subscribers applies no
// stamp at all.
//
// # Defining Payloads
//
// Domain payloads embed Envelope and add their own fields:
//
//	type PointsScored struct {
//	    payload.Envelope
//	    Team   string `json:"team"`
//	    Points int    `json:"points"`
//	}
//
// The embedded Envelope provides ApplyStamp, so the new type satisfies
// Carrier with no extra code. Field tags keep payloads JSON-serializable
// for relays that publish broadcasts onto external transports.
package payload
