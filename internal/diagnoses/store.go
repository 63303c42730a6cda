package diagnoses

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vetgate/internal/storage"
)

var ErrNotFound = errors.New("Diagnóstico no encontrado")

type Store struct {
	gw *storage.Gateway
}

func NewStore(gw *storage.Gateway) *Store {
	return &Store{gw: gw}
}

func (s *Store) Insert(ctx context.Context, d *Diagnosis) error {
	const q = `
		INSERT INTO diagnosticos (id_evaluacion, diagnostico, tratamiento, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return s.gw.QueryRow(ctx, "create diagnostico", q,
		[]any{d.IDEvaluacion, d.Diagnostico, d.Tratamiento, time.Now().UTC()},
		func(row *sql.Row) error {
			return row.Scan(&d.ID, &d.CreatedAt)
		})
}

func (s *Store) List(ctx context.Context) ([]Diagnosis, error) {
	const q = `
		SELECT id, id_evaluacion, diagnostico, tratamiento, created_at
		FROM diagnosticos ORDER BY id
	`
	result := []Diagnosis{}
	err := s.gw.Query(ctx, "list diagnosticos", q, nil, func(rows *sql.Rows) error {
		var d Diagnosis
		if err := rows.Scan(&d.ID, &d.IDEvaluacion, &d.Diagnostico,
			&d.Tratamiento, &d.CreatedAt); err != nil {
			return err
		}
		result = append(result, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Store) Update(ctx context.Context, id int64, d *Diagnosis) error {
	const q = `
		UPDATE diagnosticos
		SET id_evaluacion = $1, diagnostico = $2, tratamiento = $3
		WHERE id = $4
	`
	n, err := s.gw.Exec(ctx, "update diagnostico", q,
		d.IDEvaluacion, d.Diagnostico, d.Tratamiento, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	d.ID = id
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	n, err := s.gw.Exec(ctx, "delete diagnostico", `DELETE FROM diagnosticos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
