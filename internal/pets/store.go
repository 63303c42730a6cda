package pets

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vetgate/internal/storage"
)

var ErrNotFound = errors.New("Mascota no encontrada")

type Store struct {
	gw *storage.Gateway
}

func NewStore(gw *storage.Gateway) *Store {
	return &Store{gw: gw}
}

func (s *Store) Insert(ctx context.Context, p *Pet) error {
	const q = `
		INSERT INTO mascotas (nombre_mascota, especie, raza, fecha_nacimiento, id_dueno, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return s.gw.QueryRow(ctx, "create mascota", q,
		[]any{p.NombreMascota, p.Especie, p.Raza, p.FechaNacimiento, p.IDDueno, time.Now().UTC()},
		func(row *sql.Row) error {
			return row.Scan(&p.ID, &p.CreatedAt)
		})
}

func (s *Store) List(ctx context.Context) ([]Pet, error) {
	const q = `
		SELECT id, nombre_mascota, especie, raza, fecha_nacimiento, id_dueno, created_at
		FROM mascotas ORDER BY id
	`
	result := []Pet{}
	err := s.gw.Query(ctx, "list mascotas", q, nil, func(rows *sql.Rows) error {
		var p Pet
		if err := rows.Scan(&p.ID, &p.NombreMascota, &p.Especie, &p.Raza,
			&p.FechaNacimiento, &p.IDDueno, &p.CreatedAt); err != nil {
			return err
		}
		result = append(result, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Store) Update(ctx context.Context, id int64, p *Pet) error {
	const q = `
		UPDATE mascotas
		SET nombre_mascota = $1, especie = $2, raza = $3, fecha_nacimiento = $4, id_dueno = $5
		WHERE id = $6
	`
	n, err := s.gw.Exec(ctx, "update mascota", q,
		p.NombreMascota, p.Especie, p.Raza, p.FechaNacimiento, p.IDDueno, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	p.ID = id
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	n, err := s.gw.Exec(ctx, "delete mascota", `DELETE FROM mascotas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
