//go:build unit

package fanout_test

import (
	"sync"
	"testing"
	"time"

	"expert-booking/internal/fanout"
	"expert-booking/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHub(buffer int) *fanout.Hub {
	return fanout.NewHub(config.FanoutConfig{SubscriberBuffer: buffer})
}

func receiveOne(t *testing.T, sub *fanout.Subscription) fanout.Event {
	t.Helper()
	select {
	case event, ok := <-sub.Events():
		require.True(t, ok, "channel closed before event arrived")
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return fanout.Event{}
	}
}

func assertNoEvent(t *testing.T, sub *fanout.Subscription) {
	t.Helper()
	select {
	case event, ok := <-sub.Events():
		if ok {
			t.Fatalf("unexpected event: %+v", event)
		}
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubPublishSubscribe(t *testing.T) {
	providerID := uuid.New()

	t.Run("subscriber on the topic receives the event", func(t *testing.T) {
		hub := newHub(4)
		sub := hub.Subscribe(fanout.ProviderTopic(providerID))
		defer sub.Close()

		hub.Publish(fanout.ProviderTopic(providerID), fanout.SlotClaimed(providerID, "2030-06-15", "10:00"))

		event := receiveOne(t, sub)
		assert.Equal(t, fanout.EventSlotClaimed, event.Type)
		assert.Equal(t, providerID, event.ProviderID)
		assert.Equal(t, "10:00", event.Time)
	})

	t.Run("subscriber on another topic receives nothing", func(t *testing.T) {
		hub := newHub(4)
		other := hub.Subscribe(fanout.ProviderTopic(uuid.New()))
		defer other.Close()

		hub.Publish(fanout.ProviderTopic(providerID), fanout.SlotClaimed(providerID, "2030-06-15", "10:00"))

		assertNoEvent(t, other)
	})

	t.Run("one subscription can span several topics", func(t *testing.T) {
		hub := newHub(4)
		sub := hub.Subscribe(fanout.TopicAdmin, fanout.ProviderTopic(providerID))
		defer sub.Close()

		hub.Publish(fanout.TopicAdmin, fanout.StatusChanged(uuid.New(), "confirmed"))
		hub.Publish(fanout.ProviderTopic(providerID), fanout.SlotReleased(providerID, "2030-06-15", "10:00"))

		first := receiveOne(t, sub)
		second := receiveOne(t, sub)
		assert.Equal(t, fanout.EventStatusChanged, first.Type)
		assert.Equal(t, fanout.EventSlotReleased, second.Type)
	})

	t.Run("publish to a topic with no subscribers is a no-op", func(t *testing.T) {
		hub := newHub(4)
		hub.Publish(fanout.TopicAdmin, fanout.StatusChanged(uuid.New(), "cancelled"))
	})
}

// A transition publishes once per topic; a subscriber on one topic must see
// exactly one event for it, not one per fan-out target.
func TestHubExactlyOncePerSubscriber(t *testing.T) {
	hub := newHub(8)
	providerID := uuid.New()

	providerSub := hub.Subscribe(fanout.ProviderTopic(providerID))
	defer providerSub.Close()
	adminSub := hub.Subscribe(fanout.TopicAdmin)
	defer adminSub.Close()

	event := fanout.StatusChanged(uuid.New(), "confirmed")
	hub.Publish(fanout.ProviderTopic(providerID), event)
	hub.Publish(fanout.TopicAdmin, event)

	got := receiveOne(t, providerSub)
	assert.Equal(t, event.BookingID, got.BookingID)
	assertNoEvent(t, providerSub)

	got = receiveOne(t, adminSub)
	assert.Equal(t, event.BookingID, got.BookingID)
	assertNoEvent(t, adminSub)
}

func TestHubClose(t *testing.T) {
	t.Run("closed subscriber is removed and gets nothing", func(t *testing.T) {
		hub := newHub(4)
		providerID := uuid.New()
		topic := fanout.ProviderTopic(providerID)

		sub := hub.Subscribe(topic)
		require.Equal(t, 1, hub.SubscriberCount(topic))

		sub.Close()
		assert.Equal(t, 0, hub.SubscriberCount(topic))

		hub.Publish(topic, fanout.SlotClaimed(providerID, "2030-06-15", "10:00"))
		_, ok := <-sub.Events()
		assert.False(t, ok, "channel must be closed")
	})

	t.Run("double close is safe", func(t *testing.T) {
		hub := newHub(4)
		sub := hub.Subscribe(fanout.TopicAdmin)
		sub.Close()
		sub.Close()
	})
}

func TestHubFullBufferDropsEvent(t *testing.T) {
	hub := newHub(1)
	providerID := uuid.New()
	topic := fanout.ProviderTopic(providerID)

	sub := hub.Subscribe(topic)
	defer sub.Close()

	// Second publish overflows the single-slot buffer and is dropped rather
	// than blocking the publisher.
	hub.Publish(topic, fanout.SlotClaimed(providerID, "2030-06-15", "09:00"))
	hub.Publish(topic, fanout.SlotClaimed(providerID, "2030-06-15", "10:00"))

	event := receiveOne(t, sub)
	assert.Equal(t, "09:00", event.Time)
	assertNoEvent(t, sub)
}

func TestHubConcurrentPublishAndChurn(t *testing.T) {
	hub := newHub(16)
	providerID := uuid.New()
	topic := fanout.ProviderTopic(providerID)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				hub.Publish(topic, fanout.SlotClaimed(providerID, "2030-06-15", "10:00"))
			}
		}()
	}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				sub := hub.Subscribe(topic)
				sub.Close()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, hub.SubscriberCount(topic))
}

func TestTopicNames(t *testing.T) {
	providerID := uuid.MustParse("11111111-2222-3333-4444-555555555555")

	assert.Equal(t, "provider:11111111-2222-3333-4444-555555555555", fanout.ProviderTopic(providerID))
	assert.Equal(t, "availability:11111111-2222-3333-4444-555555555555:2030-06-15", fanout.AvailabilityTopic(providerID, "2030-06-15"))
	assert.Equal(t, "admin", fanout.TopicAdmin)
}
