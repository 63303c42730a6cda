package diagnoses

import "time"

type Diagnosis struct {
	ID           int64     `json:"id"`
	IDEvaluacion int64     `json:"id_evaluacion"`
	Diagnostico  string    `json:"diagnostico"`
	Tratamiento  string    `json:"tratamiento"`
	CreatedAt    time.Time `json:"created_at"`
}
