package roles

import (
	"testing"

	"clubdeportivo/internal/models"
)

func TestPermisosPara(t *testing.T) {
	tests := []struct {
		rol     string
		entidad Entidad
		want    Permisos
	}{
		{
			rol:     models.RolAdmin,
			entidad: EntidadMensualidad,
			want:    Permisos{CanCreate: true, CanEdit: true, CanDelete: true, CanViewAll: true, Columnas: []string{ColumnaTodas}},
		},
		{
			rol:     models.RolEntrenador,
			entidad: EntidadAsistencia,
			want:    Permisos{CanCreate: true, CanEdit: true, CanViewAll: true, Columnas: []string{"jugador_nombre", "actividad_titulo", "estado", "fecha"}},
		},
		{
			// el entrenador no ve mensualidades
			rol:     models.RolEntrenador,
			entidad: EntidadMensualidad,
			want:    Permisos{},
		},
		{
			// el jugador solo mira sus asistencias
			rol:     models.RolJugador,
			entidad: EntidadAsistencia,
			want:    Permisos{Columnas: []string{"actividad_titulo", "estado", "fecha"}},
		},
		{
			// el apoderado paga pero no crea ni anula
			rol:     models.RolApoderado,
			entidad: EntidadMensualidad,
			want:    Permisos{CanEdit: true, Columnas: []string{"jugador_nombre", "monto", "estado", "fecha_vencimiento", "mes", "anio"}},
		},
		{
			rol:     models.RolApoderado,
			entidad: EntidadEvento,
			want:    Permisos{CanViewAll: true, Columnas: []string{"titulo", "tipo", "fecha_hora", "lugar"}},
		},
	}

	for _, tt := range tests {
		got, err := PermisosPara(tt.rol, tt.entidad)
		if err != nil {
			t.Errorf("PermisosPara(%s, %s): %v", tt.rol, tt.entidad, err)
			continue
		}
		if got.CanCreate != tt.want.CanCreate || got.CanEdit != tt.want.CanEdit ||
			got.CanDelete != tt.want.CanDelete || got.CanViewAll != tt.want.CanViewAll {
			t.Errorf("PermisosPara(%s, %s) = %+v, want %+v", tt.rol, tt.entidad, got, tt.want)
		}
		if len(got.Columnas) != len(tt.want.Columnas) {
			t.Errorf("PermisosPara(%s, %s) columnas = %v, want %v", tt.rol, tt.entidad, got.Columnas, tt.want.Columnas)
			continue
		}
		for i, col := range tt.want.Columnas {
			if got.Columnas[i] != col {
				t.Errorf("PermisosPara(%s, %s) columna[%d] = %q, want %q", tt.rol, tt.entidad, i, got.Columnas[i], col)
			}
		}
	}
}

// Toda combinación (rol, entidad) debe estar resuelta en la tabla; un rol o
// entidad nuevos sin completar rompen aquí antes que en producción.
func TestMatrizExhaustiva(t *testing.T) {
	roles := []string{models.RolAdmin, models.RolEntrenador, models.RolJugador, models.RolApoderado}
	entidades := []Entidad{EntidadAsistencia, EntidadEvento, EntidadMensualidad}

	for _, rol := range roles {
		for _, entidad := range entidades {
			if _, err := PermisosPara(rol, entidad); err != nil {
				t.Errorf("PermisosPara(%s, %s): %v", rol, entidad, err)
			}
		}
	}
}

func TestPermisosParaDesconocidos(t *testing.T) {
	if _, err := PermisosPara("arbitro", EntidadEvento); err == nil {
		t.Error("esperaba error para un rol desconocido")
	}
	if _, err := PermisosPara(models.RolAdmin, Entidad("sanciones")); err == nil {
		t.Error("esperaba error para una entidad desconocida")
	}
}
