// Package stream fans ring snapshots out to out-of-process renderers.
//
// A Broker receives every snapshot from the driver loop and forwards it to
// its subscribers without ever blocking the loop: a subscriber whose buffer
// is full misses that frame. Handler serves the frames over a websocket.
package stream

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/somtsp/som"
)

// subBuffer is the per-subscriber frame buffer.
const subBuffer = 8

// Broker is a latest-value snapshot hub. The zero value is not usable; use NewBroker.
type Broker struct {
	mu     sync.Mutex
	subs   map[chan som.Snapshot]struct{}
	latest som.Snapshot
	seen   bool
	closed bool

	dropped atomic.Uint64
}

// NewBroker returns an empty broker.
func NewBroker() *Broker {
	return &Broker{subs: map[chan som.Snapshot]struct{}{}}
}

// Subscribe registers a new subscriber. When a snapshot was already
// published, the channel starts with it so late renderers draw at once.
// After Close the returned channel is already closed.
func (b *Broker) Subscribe() chan som.Snapshot {
	ch := make(chan som.Snapshot, subBuffer)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	if b.seen {
		ch <- b.latest
	}
	b.subs[ch] = struct{}{}
	return ch
}

// Unsubscribe removes ch and closes it. Unknown or already removed channels
// are ignored.
func (b *Broker) Unsubscribe(ch chan som.Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
}

// Publish records s as the latest snapshot and offers it to every subscriber.
// It never blocks and never fails; it satisfies driver.Sink.
func (b *Broker) Publish(_ context.Context, s som.Snapshot) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.latest, b.seen = s, true
	for ch := range b.subs {
		select {
		case ch <- s:
		default:
			b.dropped.Add(1)
		}
	}
	return nil
}

// Latest returns the most recent snapshot and whether one was published.
func (b *Broker) Latest() (som.Snapshot, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.latest, b.seen
}

// Subscribers returns the number of live subscribers.
func (b *Broker) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Dropped returns the number of frames skipped for slow subscribers.
func (b *Broker) Dropped() uint64 { return b.dropped.Load() }

// Close closes every subscriber channel; later publishes are discarded.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
}
