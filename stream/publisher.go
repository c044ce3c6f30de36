package stream

import (
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/mknell/herald/payload"
)

// Publisher relays payloads onto a watermill publisher under a fixed
// topic, bridging in-process broadcasts to whatever transport backs the
// publisher. Each payload becomes one JSON-encoded message with a fresh
// message UUID.
type Publisher[T payload.Carrier] struct {
	pub   message.Publisher
	topic string
}

// NewPublisher wraps pub in a sink publishing to topic.
func NewPublisher[T payload.Carrier](pub message.Publisher, topic string) (*Publisher[T], error) {
	if pub == nil {
		return nil, fmt.Errorf("stream publisher: publisher cannot be nil")
	}
	if topic == "" {
		return nil, fmt.Errorf("stream publisher: topic cannot be empty")
	}
	return &Publisher[T]{pub: pub, topic: topic}, nil
}

// Topic returns the topic every pushed payload is published under.
func (p *Publisher[T]) Topic() string {
	return p.topic
}

// Push marshals v and publishes it. Publishing is as synchronous as the
// underlying publisher; a slow broker stalls the broadcast.
func (p *Publisher[T]) Push(v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("stream publisher: marshal failure: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), b)
	if err := p.pub.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("stream publisher: failed to publish to topic %s: %w", p.topic, err)
	}
	return nil
}
