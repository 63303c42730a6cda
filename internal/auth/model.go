package auth

import "errors"

// Role selects which collection a login is checked against.
type Role string

const (
	RoleClient Role = "cliente"
	RoleStaff  Role = "funcionario"
)

var ErrUnknownRole = errors.New("rol desconocido")

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleClient, RoleStaff:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

// Account is the slice of a stored user record the auth flow needs.
type Account struct {
	Email        string
	PasswordHash string
	Role         Role
}
