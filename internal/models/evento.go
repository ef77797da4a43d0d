package models

import "time"

// Tipos de evento
const (
	EventoPartido       = "partido"
	EventoTorneo        = "torneo"
	EventoAmistoso      = "amistoso"
	EventoEntrenamiento = "entrenamiento"
)

type Evento struct {
	ID            string    `db:"id" json:"id"`
	Titulo        string    `db:"titulo" json:"titulo" validate:"required"`
	Tipo          string    `db:"tipo" json:"tipo" validate:"required,oneof=partido torneo amistoso entrenamiento"`
	FechaHora     time.Time `db:"fecha_hora" json:"fecha_hora" validate:"required"`
	Lugar         string    `db:"lugar" json:"lugar" validate:"required"`
	OrganizadorID string    `db:"organizador_id" json:"organizador_id" validate:"required"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`

	// Joined fields
	OrganizadorNombre string `db:"organizador_nombre" json:"organizador_nombre,omitempty"`
}
