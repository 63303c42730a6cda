package clients

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vetgate/internal/auth"
	"vetgate/internal/storage"
)

type Store struct {
	gw *storage.Gateway
}

func NewStore(gw *storage.Gateway) *Store {
	return &Store{gw: gw}
}

func (s *Store) Create(ctx context.Context, nombreUsuario, correo, passwordHash string) (*Client, error) {
	const q = `
		INSERT INTO clientes (nombre_usuario, correo, contrasena, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, nombre_usuario, correo, contrasena, created_at
	`
	c := &Client{}
	err := s.gw.QueryRow(ctx, "create cliente", q,
		[]any{nombreUsuario, correo, passwordHash, time.Now().UTC()},
		func(row *sql.Row) error {
			return row.Scan(&c.ID, &c.NombreUsuario, &c.Correo, &c.PasswordHash, &c.CreatedAt)
		})
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, storage.ErrDuplicateEmail
		}
		return nil, err
	}
	return c, nil
}

// FindByEmail implements auth.AccountSource for the clientes collection.
func (s *Store) FindByEmail(ctx context.Context, correo string) (*auth.Account, error) {
	const q = `SELECT correo, contrasena FROM clientes WHERE correo = $1`
	acct := &auth.Account{Role: auth.RoleClient}
	err := s.gw.QueryRow(ctx, "find cliente", q, []any{correo}, func(row *sql.Row) error {
		return row.Scan(&acct.Email, &acct.PasswordHash)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, err
	}
	return acct, nil
}
