package appointments

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vetgate/internal/storage"
)

var ErrNotFound = errors.New("Cita no encontrada")

type Store struct {
	gw *storage.Gateway
}

func NewStore(gw *storage.Gateway) *Store {
	return &Store{gw: gw}
}

func (s *Store) Insert(ctx context.Context, a *Appointment) error {
	const q = `
		INSERT INTO citas (id_mascota, fecha_cita, id_veterinario, hora_cita, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return s.gw.QueryRow(ctx, "create cita", q,
		[]any{a.IDMascota, a.FechaCita, a.IDVeterinario, a.HoraCita, time.Now().UTC()},
		func(row *sql.Row) error {
			return row.Scan(&a.ID, &a.CreatedAt)
		})
}

func (s *Store) List(ctx context.Context) ([]Appointment, error) {
	const q = `
		SELECT id, id_mascota, fecha_cita, id_veterinario, hora_cita, created_at
		FROM citas ORDER BY id
	`
	result := []Appointment{}
	err := s.gw.Query(ctx, "list citas", q, nil, func(rows *sql.Rows) error {
		var a Appointment
		if err := rows.Scan(&a.ID, &a.IDMascota, &a.FechaCita,
			&a.IDVeterinario, &a.HoraCita, &a.CreatedAt); err != nil {
			return err
		}
		result = append(result, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Store) Update(ctx context.Context, id int64, a *Appointment) error {
	const q = `
		UPDATE citas
		SET id_mascota = $1, fecha_cita = $2, id_veterinario = $3, hora_cita = $4
		WHERE id = $5
	`
	n, err := s.gw.Exec(ctx, "update cita", q,
		a.IDMascota, a.FechaCita, a.IDVeterinario, a.HoraCita, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	a.ID = id
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	n, err := s.gw.Exec(ctx, "delete cita", `DELETE FROM citas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
