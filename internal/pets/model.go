package pets

import "time"

type Pet struct {
	ID              int64     `json:"id"`
	NombreMascota   string    `json:"nombre_mascota"`
	Especie         string    `json:"especie"`
	Raza            string    `json:"raza"`
	FechaNacimiento string    `json:"fecha_nacimiento"`
	IDDueno         int64     `json:"id_dueño"`
	CreatedAt       time.Time `json:"created_at"`
}
