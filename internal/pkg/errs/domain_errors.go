package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers. Handlers map
// these onto HTTP statuses; repositories never return them directly.
var (
	// Directory errors
	ErrProviderNotFound = errors.New("provider not found")

	// Ledger errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotTaken       = errors.New("slot already booked")

	// Lifecycle errors
	ErrForbidden         = errors.New("not authorized for this booking")
	ErrInvalidTransition = errors.New("invalid status transition")

	// Identity errors
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrValidation = errors.New("invalid client info")

	// Storage errors
	ErrStorageUnavailable = errors.New("storage unavailable")
)
