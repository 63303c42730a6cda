package staff

import "time"

type Funcionario struct {
	ID           int64     `json:"id"`
	Nombre       string    `json:"nombre"`
	Puesto       string    `json:"puesto"`
	Correo       string    `json:"correo"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
