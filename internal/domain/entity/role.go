package entity

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Role represents a user role in the system. It is fixed at registration.
type Role string

const (
	RolePatient Role = "PATIENT"
	RoleDoctor  Role = "DOCTOR"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole accepts role names case-insensitively.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RolePatient:
		return RolePatient, nil
	case RoleDoctor:
		return RoleDoctor, nil
	default:
		return "", ErrUnknownRole
	}
}

func (r Role) String() string {
	return string(r)
}

// Identity is the authenticated caller resolved by the auth middleware.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

func (i Identity) IsZero() bool {
	return i.UserID == uuid.Nil
}
