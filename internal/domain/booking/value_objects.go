package booking

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName  = errors.New("client name is required")
	ErrEmptyEmail = errors.New("client email is required")
	ErrEmptyPhone = errors.New("client phone is required")
	ErrEmptyTime  = errors.New("slot time is required")
)

// ClientInfo is the contact block captured at claim time. Name, email and
// phone are mandatory; notes are optional and live on the entity.
type ClientInfo struct {
	name  string
	email string
	phone string
}

func NewClientInfo(name, email, phone string) (ClientInfo, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return ClientInfo{}, ErrEmptyName
	}
	if email == "" {
		return ClientInfo{}, ErrEmptyEmail
	}
	if phone == "" {
		return ClientInfo{}, ErrEmptyPhone
	}

	return ClientInfo{name: name, email: email, phone: phone}, nil
}

func (c ClientInfo) Name() string  { return c.name }
func (c ClientInfo) Email() string { return c.email }
func (c ClientInfo) Phone() string { return c.phone }

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
