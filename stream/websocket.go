package stream

import (
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mknell/herald/payload"
)

const writeDeadline = 5 * time.Second

// WebSocket forwards payloads to a websocket connection as JSON text
// messages. Writes carry a deadline so a stalled peer fails the push
// instead of hanging the broadcast.
//
// The sink does not serialize access to the connection; attach it to an
// event owned by the goroutine that writes, or guard the connection
// externally.
type WebSocket[T payload.Carrier] struct {
	conn *websocket.Conn
}

// NewWebSocket wraps conn in a sink. The connection remains owned by
// the caller and is never closed by the sink or the event.
func NewWebSocket[T payload.Carrier](conn *websocket.Conn) (*WebSocket[T], error) {
	if conn == nil {
		return nil, fmt.Errorf("stream websocket: connection cannot be nil")
	}
	return &WebSocket[T]{conn: conn}, nil
}

// Push writes p as one JSON message.
func (w *WebSocket[T]) Push(p T) error {
	w.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	if err := w.conn.WriteJSON(p); err != nil {
		return fmt.Errorf("stream websocket: write failure: %w", err)
	}
	return nil
}
