package fanout

import (
	"fmt"

	"github.com/google/uuid"
)

type EventType string

const (
	EventSlotClaimed   EventType = "slot_claimed"
	EventSlotReleased  EventType = "slot_released"
	EventStatusChanged EventType = "status_changed"
)

// Event is the wire unit pushed to subscribers. Slot events carry the tuple;
// status events carry the booking id and its new status.
type Event struct {
	Type       EventType `json:"type"`
	ProviderID uuid.UUID `json:"providerId,omitempty"`
	Date       string    `json:"date,omitempty"`
	Time       string    `json:"time,omitempty"`
	BookingID  uuid.UUID `json:"bookingId,omitempty"`
	Status     string    `json:"status,omitempty"`
}

func SlotClaimed(providerID uuid.UUID, date, time string) Event {
	return Event{Type: EventSlotClaimed, ProviderID: providerID, Date: date, Time: time}
}

func SlotReleased(providerID uuid.UUID, date, time string) Event {
	return Event{Type: EventSlotReleased, ProviderID: providerID, Date: date, Time: time}
}

func StatusChanged(bookingID uuid.UUID, status string) Event {
	return Event{Type: EventStatusChanged, BookingID: bookingID, Status: status}
}

// Topic names. Providers and admins each have a room; date watchers subscribe
// to the availability topic for the provider+date they are viewing.
const TopicAdmin = "admin"

func ProviderTopic(providerID uuid.UUID) string {
	return fmt.Sprintf("provider:%s", providerID)
}

func AvailabilityTopic(providerID uuid.UUID, date string) string {
	return fmt.Sprintf("availability:%s:%s", providerID, date)
}
