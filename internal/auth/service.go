package auth

import (
	"context"
	"errors"
)

var (
	// ErrInvalidCredentials masks both unknown email and wrong password so
	// callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("Correo o contraseña incorrectos")

	// ErrAccountNotFound is returned by account sources when no record
	// matches the email.
	ErrAccountNotFound = errors.New("cuenta no encontrada")
)

// AccountSource looks up stored accounts for one collection.
type AccountSource interface {
	FindByEmail(ctx context.Context, email string) (*Account, error)
}

type Service struct {
	clients AccountSource
	staff   AccountSource
	tokens  *TokenIssuer
}

func NewService(clients, staff AccountSource, tokens *TokenIssuer) *Service {
	return &Service{clients: clients, staff: staff, tokens: tokens}
}

func (s *Service) source(role Role) AccountSource {
	if role == RoleStaff {
		return s.staff
	}
	return s.clients
}

// Login checks the password against the role's collection and mints a
// bearer token with the email as subject.
func (s *Service) Login(ctx context.Context, email, password string, role Role) (string, error) {
	acct, err := s.source(role).FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !CheckPassword(password, acct.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(acct.Email)
}

// VerifyClient checks a client's password without issuing a token. Unlike
// Login it distinguishes an unknown email (ErrAccountNotFound) from a wrong
// password (ErrInvalidCredentials).
func (s *Service) VerifyClient(ctx context.Context, email, password string) error {
	acct, err := s.clients.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !CheckPassword(password, acct.PasswordHash) {
		return ErrInvalidCredentials
	}
	return nil
}

// Authorize verifies a bearer token and returns its subject.
func (s *Service) Authorize(tokenStr string) (string, error) {
	return s.tokens.Verify(tokenStr)
}
