package domain

import "context"

// Message is one bus event in flight. Commit acknowledges the message to
// the bus; leaving a message uncommitted makes it eligible for redelivery,
// which processors absorb through idempotent writes.
type Message struct {
	Key    []byte
	Value  []byte
	Commit func() error
}

type PublisherPort interface {
	Publish(topic string, msgs ...Message) error
}

type SubscriberPort interface {
	// Subscribe returns an unbounded blocking stream of messages for the
	// topic. The channel closes when ctx is cancelled.
	Subscribe(ctx context.Context, topic, groupID string) (<-chan Message, error)
}
