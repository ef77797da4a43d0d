package roles

import (
	"fmt"

	"clubdeportivo/internal/models"
)

type Entidad string

const (
	EntidadAsistencia  Entidad = "asistencias"
	EntidadEvento      Entidad = "eventos"
	EntidadMensualidad Entidad = "mensualidades"
)

// ColumnaTodas es el centinela "todas las columnas visibles".
const ColumnaTodas = "todas"

// Permisos es el descriptor estático de capacidades de un rol sobre una
// entidad. Son constantes puras, no se computan de ninguna política.
type Permisos struct {
	CanCreate  bool
	CanEdit    bool
	CanDelete  bool
	CanViewAll bool
	Columnas   []string
}

// Una sola tabla por (rol, entidad) en vez de literales repetidos por
// pantalla: agregar una entidad obliga a completar los cuatro roles.
var matriz = map[string]map[Entidad]Permisos{
	models.RolAdmin: {
		EntidadAsistencia:  {CanCreate: true, CanEdit: true, CanDelete: true, CanViewAll: true, Columnas: []string{ColumnaTodas}},
		EntidadEvento:      {CanCreate: true, CanEdit: true, CanDelete: true, CanViewAll: true, Columnas: []string{ColumnaTodas}},
		EntidadMensualidad: {CanCreate: true, CanEdit: true, CanDelete: true, CanViewAll: true, Columnas: []string{ColumnaTodas}},
	},
	models.RolEntrenador: {
		EntidadAsistencia:  {CanCreate: true, CanEdit: true, CanViewAll: true, Columnas: []string{"jugador_nombre", "actividad_titulo", "estado", "fecha"}},
		EntidadEvento:      {CanCreate: true, CanEdit: true, CanViewAll: true, Columnas: []string{"titulo", "tipo", "fecha_hora", "lugar", "organizador_nombre"}},
		EntidadMensualidad: {},
	},
	models.RolJugador: {
		EntidadAsistencia:  {Columnas: []string{"actividad_titulo", "estado", "fecha"}},
		EntidadEvento:      {CanViewAll: true, Columnas: []string{"titulo", "tipo", "fecha_hora", "lugar"}},
		EntidadMensualidad: {Columnas: []string{"monto", "estado", "fecha_vencimiento", "mes", "anio"}},
	},
	models.RolApoderado: {
		EntidadAsistencia:  {Columnas: []string{"jugador_nombre", "actividad_titulo", "estado", "fecha"}},
		EntidadEvento:      {CanViewAll: true, Columnas: []string{"titulo", "tipo", "fecha_hora", "lugar"}},
		EntidadMensualidad: {CanEdit: true, Columnas: []string{"jugador_nombre", "monto", "estado", "fecha_vencimiento", "mes", "anio"}},
	},
}

// PermisosPara busca el descriptor para (rol, entidad).
func PermisosPara(rol string, entidad Entidad) (Permisos, error) {
	porEntidad, ok := matriz[rol]
	if !ok {
		return Permisos{}, fmt.Errorf("rol desconocido: %q", rol)
	}
	permisos, ok := porEntidad[entidad]
	if !ok {
		return Permisos{}, fmt.Errorf("entidad desconocida: %q", entidad)
	}
	return permisos, nil
}
