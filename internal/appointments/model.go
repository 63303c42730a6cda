package appointments

import "time"

type Appointment struct {
	ID            int64     `json:"id"`
	IDMascota     int64     `json:"id_mascota"`
	FechaCita     string    `json:"fecha_cita"`
	IDVeterinario int64     `json:"id_veterinario"`
	HoraCita      string    `json:"hora_cita"`
	CreatedAt     time.Time `json:"created_at"`
}
