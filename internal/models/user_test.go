package models

import "testing"

func TestRolValido(t *testing.T) {
	for _, rol := range []string{RolAdmin, RolEntrenador, RolJugador, RolApoderado} {
		if !RolValido(rol) {
			t.Errorf("RolValido(%q) = false, want true", rol)
		}
	}
	for _, rol := range []string{"", "arbitro", "Admin", "ADMIN"} {
		if RolValido(rol) {
			t.Errorf("RolValido(%q) = true, want false", rol)
		}
	}
}
