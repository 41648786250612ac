package identity

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

// Role distinguishes the two account stores plus the admin capability.
// Clients book slots; providers own them; admins may act on any booking.
type Role string

const (
	RoleClient   Role = "client"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

func NewRole(value string) (Role, error) {
	role := Role(value)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleProvider, RoleAdmin:
		return true
	default:
		return false
	}
}

// Identity is the single polymorphic caller identity produced by resolution,
// regardless of which backing store matched.
type Identity struct {
	ID    uuid.UUID
	Role  Role
	Email string
}

// CanManageProvider reports whether this identity may perform lifecycle
// transitions on bookings owned by the given provider.
func (i Identity) CanManageProvider(providerID uuid.UUID) bool {
	if i.Role == RoleAdmin {
		return true
	}
	return i.Role == RoleProvider && i.ID == providerID
}

// IsBookingClient reports whether this identity is the client that created a
// booking with the given contact email.
func (i Identity) IsBookingClient(clientEmail string) bool {
	return i.Role == RoleClient && i.Email != "" && i.Email == clientEmail
}
