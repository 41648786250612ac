package fanout

import (
	"log/slog"
	"sync"

	"expert-booking/internal/pkg/config"
)

// Publisher is the write side of the hub, injected into usecases so they never
// touch subscriber state.
type Publisher interface {
	Publish(topic string, event Event)
}

// Hub is a topic-scoped publish/subscribe registry. Delivery is best-effort to
// currently-connected subscribers only: there is no replay log, and a
// subscriber whose buffer is full misses the event. Observers reconcile
// through the availability read path on reconnect.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]*topic

	buffer int
}

// topic holds one subscriber set. Each topic has its own lock so subscription
// churn on one provider's room never contends with another's.
type topic struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

type Subscription struct {
	hub    *Hub
	topics []string
	ch     chan Event

	closeOnce sync.Once
}

func NewHub(cfg config.FanoutConfig) *Hub {
	buffer := cfg.SubscriberBuffer
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{
		topics: make(map[string]*topic),
		buffer: buffer,
	}
}

// Subscribe registers one subscription across the given topics. The returned
// subscription must be closed by the caller; Close is what prevents unbounded
// registry growth when observers disconnect.
func (h *Hub) Subscribe(topics ...string) *Subscription {
	sub := &Subscription{
		hub:    h,
		topics: topics,
		ch:     make(chan Event, h.buffer),
	}

	for _, name := range topics {
		t := h.topic(name)
		t.mu.Lock()
		t.subs[sub] = struct{}{}
		t.mu.Unlock()
	}

	return sub
}

// Publish delivers the event to every subscriber currently on the topic.
// Sends never block: a subscriber that cannot keep up is skipped.
func (h *Hub) Publish(name string, event Event) {
	h.mu.RLock()
	t, ok := h.topics[name]
	h.mu.RUnlock()
	if !ok {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for sub := range t.subs {
		select {
		case sub.ch <- event:
		default:
			slog.Warn("fanout subscriber buffer full, dropping event",
				"topic", name, "event_type", string(event.Type))
		}
	}
}

// SubscriberCount is a registry probe for tests and health diagnostics.
func (h *Hub) SubscriberCount(name string) int {
	h.mu.RLock()
	t, ok := h.topics[name]
	h.mu.RUnlock()
	if !ok {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}

func (h *Hub) topic(name string) *topic {
	h.mu.RLock()
	t, ok := h.topics[name]
	h.mu.RUnlock()
	if ok {
		return t
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if t, ok = h.topics[name]; ok {
		return t
	}
	t = &topic{subs: make(map[*Subscription]struct{})}
	h.topics[name] = t
	return t
}

// Events yields events until the subscription is closed.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Close removes the subscription from every topic it joined and closes the
// event channel. Safe to call more than once.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		for _, name := range s.topics {
			s.hub.mu.RLock()
			t, ok := s.hub.topics[name]
			s.hub.mu.RUnlock()
			if !ok {
				continue
			}
			t.mu.Lock()
			delete(t.subs, s)
			t.mu.Unlock()
		}
		close(s.ch)
	})
}
