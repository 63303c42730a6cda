package staff

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

func (s *Store) Create(ctx context.Context, nombre, puesto, correo, passwordHash string) (*Funcionario, error) {
	const q = `
		INSERT INTO funcionarios (nombre, puesto, correo, contrasena, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, nombre, puesto, correo, contrasena, created_at
	`
	f := &Funcionario{}
	err := s.gw.QueryRow(ctx, "create funcionario", q,
		[]any{nombre, puesto, correo, passwordHash, time.Now().UTC()},
		func(row *sql.Row) error {
			return row.Scan(&f.ID, &f.Nombre, &f.Puesto, &f.Correo, &f.PasswordHash, &f.CreatedAt)
		})
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, storage.ErrDuplicateEmail
		}
		return nil, err
	}
	return f, nil
}

// FindByEmail implements auth.AccountSource for the funcionarios collection.
func (s *Store) FindByEmail(ctx context.Context, correo string) (*auth.Account, error) {
	const q = `SELECT correo, contrasena FROM funcionarios WHERE correo = $1`
	acct := &auth.Account{Role: auth.RoleStaff}
	err := s.gw.QueryRow(ctx, "find funcionario", q, []any{correo}, func(row *sql.Row) error {
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
