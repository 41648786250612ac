package schedule

import "github.com/google/uuid"

// CandidateSlot is a time label with a computed availability flag. It is the
// unit of the availability view and is never persisted on its own.
type CandidateSlot struct {
	Time      string
	Available bool
}

// Template is a provider's per-date slot override, owned by the directory
// service and read-only here. Absence of a template falls back to the global
// default below.
type Template struct {
	ProviderID uuid.UUID
	Date       Date
	Times      []CandidateSlot
}

// DefaultTimes returns the global default slot template: a fresh copy each
// call, since callers mutate availability flags in place.
func DefaultTimes() []CandidateSlot {
	return []CandidateSlot{
		{Time: "09:00", Available: true},
		{Time: "10:00", Available: true},
		{Time: "11:00", Available: true},
		{Time: "14:00", Available: true},
		{Time: "16:00", Available: true},
	}
}

// ApplyClaims overrides template availability with the ledger's active claims.
// A claimed time is unavailable regardless of the template's own flag; the
// ledger is the single override authority. Template ordering is preserved.
func ApplyClaims(times []CandidateSlot, claimedTimes []string) []CandidateSlot {
	claimed := make(map[string]struct{}, len(claimedTimes))
	for _, t := range claimedTimes {
		claimed[t] = struct{}{}
	}

	result := make([]CandidateSlot, len(times))
	for i, slot := range times {
		available := slot.Available
		if _, taken := claimed[slot.Time]; taken {
			available = false
		}
		result[i] = CandidateSlot{Time: slot.Time, Available: available}
	}
	return result
}
