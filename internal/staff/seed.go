package staff

import (
	"context"
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"vetgate/internal/auth"
)

type seedFile struct {
	Funcionarios []struct {
		Nombre     string `yaml:"nombre"`
		Puesto     string `yaml:"puesto"`
		Correo     string `yaml:"correo"`
		Contrasena string `yaml:"contraseña"`
	} `yaml:"funcionarios"`
}

// SeedFromFile inserts the staff accounts listed in a yaml file, skipping
// entries whose correo already exists. Used to bootstrap a fresh database.
func (s *Store) SeedFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return err
	}
	for _, f := range sf.Funcionarios {
		if f.Correo == "" || f.Contrasena == "" {
			continue
		}
		if _, err := s.FindByEmail(ctx, f.Correo); err == nil {
			continue
		} else if !errors.Is(err, auth.ErrAccountNotFound) {
			return err
		}
		hash, err := auth.HashPassword(f.Contrasena)
		if err != nil {
			return err
		}
		if _, err := s.Create(ctx, f.Nombre, f.Puesto, f.Correo, hash); err != nil {
			return err
		}
	}
	return nil
}
