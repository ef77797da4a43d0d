package models

import "time"

type Jugador struct {
	ID          string    `db:"id" json:"id"`
	UsuarioID   string    `db:"usuario_id" json:"usuario_id"`
	ApoderadoID *string   `db:"apoderado_id" json:"apoderado_id,omitempty"`
	Categoria   string    `db:"categoria" json:"categoria"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`

	// Joined fields
	Nombre string `db:"nombre" json:"nombre,omitempty"`
}
