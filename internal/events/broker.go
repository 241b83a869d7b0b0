// Package events fans admin dashboard statistics out to live subscribers.
package events

import (
	"sync"

	"github.com/aaravmahajanofficial/templatehub/internal/metrics"
	"github.com/aaravmahajanofficial/templatehub/internal/models"
)

// StatsBroker delivers stats snapshots at most once and best effort. Each
// subscriber has a one-slot buffer holding the latest snapshot, so a slow
// reader skips intermediate values instead of blocking publishers.
type StatsBroker struct {
	mu     sync.Mutex
	subs   map[uint64]chan *models.AdminStats
	nextID uint64
	closed bool
}

func NewStatsBroker() *StatsBroker {
	return &StatsBroker{
		subs: make(map[uint64]chan *models.AdminStats),
	}
}

// Subscription is a live feed. Unsubscribe closes C and may be called more than once.
type Subscription struct {
	C <-chan *models.AdminStats

	once   sync.Once
	broker *StatsBroker
	id     uint64
}

func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.broker.remove(s.id)
	})
}

// Subscribe registers a new subscriber. On a closed broker the returned
// subscription's channel is already closed.
func (b *StatsBroker) Subscribe() *Subscription {
	ch := make(chan *models.AdminStats, 1)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(ch)
		return &Subscription{C: ch, broker: b}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	metrics.StatsSubscriberAdded()

	return &Subscription{C: ch, broker: b, id: id}
}

// Publish hands stats to every subscriber without blocking. A pending value
// that has not been read yet is replaced.
func (b *StatsBroker) Publish(stats *models.AdminStats) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case <-ch:
		default:
		}
		ch <- stats
	}
}

func (b *StatsBroker) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close ends every subscription.
func (b *StatsBroker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for id, ch := range b.subs {
		close(ch)
		delete(b.subs, id)
		metrics.StatsSubscriberRemoved()
	}
}

func (b *StatsBroker) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.subs[id]
	if !ok {
		return
	}

	delete(b.subs, id)
	close(ch)
	metrics.StatsSubscriberRemoved()
}
