package clients

import "time"

type Client struct {
	ID            int64     `json:"id"`
	NombreUsuario string    `json:"nombre_usuario"`
	Correo        string    `json:"correo"`
	PasswordHash  string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}
