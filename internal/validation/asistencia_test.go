package validation

import (
	"testing"
	"time"

	"clubdeportivo/internal/models"
)

func ref(s string) *string { return &s }

func asistenciaBase() models.Asistencia {
	return models.Asistencia{
		JugadorID: "j1",
		Estado:    models.AsistenciaPresente,
		Fecha:     time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidarAsistencia(t *testing.T) {
	tests := []struct {
		name          string
		mutar         func(a *models.Asistencia)
		wantCampo     string
		wantSinErrors bool
	}{
		{
			name: "sin entrenamiento ni evento falla sobre entrenamiento_id",
			mutar: func(a *models.Asistencia) {
				a.EntrenamientoID = nil
				a.EventoID = nil
			},
			wantCampo: "entrenamiento_id",
		},
		{
			name: "solo entrenamiento es valido",
			mutar: func(a *models.Asistencia) {
				a.EntrenamientoID = ref("e1")
			},
			wantSinErrors: true,
		},
		{
			name: "solo evento es valido",
			mutar: func(a *models.Asistencia) {
				a.EventoID = ref("ev1")
			},
			wantSinErrors: true,
		},
		{
			name: "ambos referenciados pasa, solo ninguno se rechaza",
			mutar: func(a *models.Asistencia) {
				a.EntrenamientoID = ref("e1")
				a.EventoID = ref("ev1")
			},
			wantSinErrors: true,
		},
		{
			name: "estado fuera del enum",
			mutar: func(a *models.Asistencia) {
				a.EntrenamientoID = ref("e1")
				a.Estado = "tarde"
			},
			wantCampo: "estado",
		},
		{
			name: "sin jugador",
			mutar: func(a *models.Asistencia) {
				a.EntrenamientoID = ref("e1")
				a.JugadorID = ""
			},
			wantCampo: "jugador_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := asistenciaBase()
			tt.mutar(&a)

			errores := ValidarAsistencia(a)
			if tt.wantSinErrors {
				if len(errores) != 0 {
					t.Fatalf("esperaba sin errores, got %v", errores)
				}
				return
			}
			if _, ok := errores[tt.wantCampo]; !ok {
				t.Errorf("esperaba error en %q, got %v", tt.wantCampo, errores)
			}
		})
	}
}

func TestValidarAsistenciaParcial(t *testing.T) {
	errores := ValidarAsistenciaParcial(map[string]interface{}{"estado": "tarde"})
	if _, ok := errores["estado"]; !ok {
		t.Errorf("esperaba error en estado, got %v", errores)
	}

	errores = ValidarAsistenciaParcial(map[string]interface{}{"estado": models.AsistenciaJustificado})
	if len(errores) != 0 {
		t.Errorf("esperaba sin errores, got %v", errores)
	}

	// Un parcial vacío es válido: no toca ningún campo
	if errores = ValidarAsistenciaParcial(map[string]interface{}{}); len(errores) != 0 {
		t.Errorf("esperaba sin errores para parcial vacío, got %v", errores)
	}
}
