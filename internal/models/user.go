package models

import "time"

// Roles del sistema
const (
	RolAdmin      = "admin"
	RolEntrenador = "entrenador"
	RolJugador    = "jugador"
	RolApoderado  = "apoderado"
)

type User struct {
	ID        string    `db:"id" json:"id"`
	Nombre    string    `db:"nombre" json:"nombre"`
	Apellido  string    `db:"apellido" json:"apellido"`
	Rol       string    `db:"rol" json:"rol"` // admin, entrenador, jugador, apoderado
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// RolValido reports whether rol is one of the four system roles.
func RolValido(rol string) bool {
	switch rol {
	case RolAdmin, RolEntrenador, RolJugador, RolApoderado:
		return true
	}
	return false
}
