package stream

import (
	"errors"

	"github.com/mknell/herald/payload"
)

// ErrChannelFull is returned when a Channel sink's buffer cannot accept
// another payload.
var ErrChannelFull = errors.New("stream channel is full")

// Channel forwards payloads to a Go channel. The send never blocks the
// broadcasting goroutine: a payload that does not fit the buffer is
// dropped and reported as ErrChannelFull. Size the buffer for the
// expected burst, or subscribe the sink at low priority so a full
// buffer cannot starve other handlers.
type Channel[T payload.Carrier] struct {
	ch chan<- T
}

// NewChannel wraps ch in a sink. The channel remains owned by the
// caller and is never closed by the sink or the event.
func NewChannel[T payload.Carrier](ch chan<- T) *Channel[T] {
	return &Channel[T]{ch: ch}
}

// Push sends p without blocking.
func (c *Channel[T]) Push(p T) error {
	select {
	case c.ch <- p:
		return nil
	default:
		return ErrChannelFull
	}
}
