package models

import "time"

// Estados de asistencia
const (
	AsistenciaPresente    = "presente"
	AsistenciaAusente     = "ausente"
	AsistenciaJustificado = "justificado"
	AsistenciaSinRegistro = "sin_registro"
)

// Asistencia references exactly one of EntrenamientoID/EventoID; the
// exclusivity is enforced at validation time, not by the store.
type Asistencia struct {
	ID              string    `db:"id" json:"id"`
	JugadorID       string    `db:"jugador_id" json:"jugador_id" validate:"required"`
	EntrenamientoID *string   `db:"entrenamiento_id" json:"entrenamiento_id,omitempty"`
	EventoID        *string   `db:"evento_id" json:"evento_id,omitempty"`
	Estado          string    `db:"estado" json:"estado" validate:"required,oneof=presente ausente justificado sin_registro"`
	Fecha           time.Time `db:"fecha" json:"fecha" validate:"required"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`

	// Joined fields
	JugadorNombre   string `db:"jugador_nombre" json:"jugador_nombre,omitempty"`
	ActividadTitulo string `db:"actividad_titulo" json:"actividad_titulo,omitempty"`
}

type Entrenamiento struct {
	ID           string    `db:"id" json:"id"`
	Titulo       string    `db:"titulo" json:"titulo" validate:"required"`
	Fecha        time.Time `db:"fecha" json:"fecha" validate:"required"`
	EntrenadorID string    `db:"entrenador_id" json:"entrenador_id" validate:"required"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`

	// Joined fields
	EntrenadorNombre string `db:"entrenador_nombre" json:"entrenador_nombre,omitempty"`
}
