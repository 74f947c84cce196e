package usecase

import (
	"context"
	"sync"

	"github.com/LavaJover/shvark-fx-pipeline/internal/domain"
)

// memBus is a channel-backed bus used by the processor tests. It keeps
// per-topic publish order and buffers messages published before a
// subscriber attaches.
type memBus struct {
	mu      sync.Mutex
	subs    map[string][]chan domain.Message
	backlog map[string][]domain.Message
}

func newMemBus() *memBus {
	return &memBus{
		subs:    make(map[string][]chan domain.Message),
		backlog: make(map[string][]domain.Message),
	}
}

func (b *memBus) Publish(topic string, msgs ...domain.Message) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range msgs {
		if msgs[i].Commit == nil {
			msgs[i].Commit = func() error { return nil }
		}
	}
	if len(b.subs[topic]) == 0 {
		b.backlog[topic] = append(b.backlog[topic], msgs...)
		return nil
	}
	for _, ch := range b.subs[topic] {
		for _, m := range msgs {
			ch <- m
		}
	}
	return nil
}

func (b *memBus) Subscribe(ctx context.Context, topic, groupID string) (<-chan domain.Message, error) {
	ch := make(chan domain.Message, 256)
	b.mu.Lock()
	for _, m := range b.backlog[topic] {
		ch <- m
	}
	b.backlog[topic] = nil
	b.subs[topic] = append(b.subs[topic], ch)
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()
		chans := b.subs[topic][:0]
		for _, c := range b.subs[topic] {
			if c != ch {
				chans = append(chans, c)
			}
		}
		b.subs[topic] = chans
		close(ch)
	}()
	return ch, nil
}
