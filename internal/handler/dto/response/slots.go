package response

import (
	"expert-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type SlotsResponse struct {
	ProviderID uuid.UUID      `json:"provider_id"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
}

func FromCandidateSlots(providerID uuid.UUID, date string, slots []schedule.CandidateSlot) *SlotsResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{Time: s.Time, Available: s.Available}
	}
	return &SlotsResponse{
		ProviderID: providerID,
		Date:       date,
		Slots:      out,
	}
}
