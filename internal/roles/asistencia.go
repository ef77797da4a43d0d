package roles

import (
	"fmt"
	"time"

	"clubdeportivo/internal/controller"
	"clubdeportivo/internal/errs"
	"clubdeportivo/internal/models"
	"clubdeportivo/internal/service"
	"clubdeportivo/internal/validation"

	"go.uber.org/zap"
)

var camposBusquedaAsistencia = []string{"jugador_nombre", "actividad_titulo", "estado"}

func statsAsistencias(items []models.Asistencia) map[string]int {
	stats := map[string]int{"total": len(items)}
	for _, a := range items {
		stats[a.Estado]++
	}
	return stats
}

// AsistenciaAdapter compone el descriptor de permisos del rol con un
// ListController de fetch acotado y, donde el rol puede, un FormController.
type AsistenciaAdapter struct {
	Permisos Permisos
	Lista    *controller.ListController[models.Asistencia]
	Form     *controller.FormController[models.Asistencia]

	asistencias service.AsistenciaService
	log         *zap.Logger
}

func newAsistenciaAdapter(rol string, fetch func() ([]models.Asistencia, error), asistencias service.AsistenciaService, log *zap.Logger) (*AsistenciaAdapter, error) {
	permisos, err := PermisosPara(rol, EntidadAsistencia)
	if err != nil {
		return nil, err
	}

	lista := controller.NewList(controller.ListConfig[models.Asistencia]{
		FetchItems:     fetch,
		CalculateStats: statsAsistencias,
		SearchFields:   camposBusquedaAsistencia,
	})
	lista.RegisterFiltro("estado", func(a models.Asistencia, valor string) bool {
		return a.Estado == valor
	})

	adapter := &AsistenciaAdapter{
		Permisos:    permisos,
		Lista:       lista,
		asistencias: asistencias,
		log:         log,
	}

	if permisos.CanCreate || permisos.CanEdit {
		adapter.Form = controller.NewForm(controller.FormConfig[models.Asistencia]{
			Validate: validation.ValidarAsistencia,
			OnSubmit: func(a models.Asistencia, isEditing bool) error {
				if isEditing {
					if a.ID == "" {
						return errs.ErrMissingID
					}
					_, uerr := asistencias.Update(a.ID, service.CambiosAsistencia{
						JugadorID:       &a.JugadorID,
						EntrenamientoID: a.EntrenamientoID,
						EventoID:        a.EventoID,
						Estado:          &a.Estado,
						Fecha:           &a.Fecha,
					})
					return uerr
				}
				_, cerr := asistencias.Create(a)
				return cerr
			},
			OnSuccess: func() {
				if rerr := lista.Refresh(); rerr != nil {
					log.Warn("refresh tras submit falló", zap.Error(rerr))
				}
			},
		})
	}

	return adapter, nil
}

func NewAsistenciaAdmin(asistencias service.AsistenciaService, log *zap.Logger) (*AsistenciaAdapter, error) {
	return newAsistenciaAdapter(models.RolAdmin, asistencias.GetAll, asistencias, log)
}

func NewAsistenciaEntrenador(asistencias service.AsistenciaService, log *zap.Logger) (*AsistenciaAdapter, error) {
	return newAsistenciaAdapter(models.RolEntrenador, asistencias.GetAll, asistencias, log)
}

func NewAsistenciaJugador(asistencias service.AsistenciaService, jugadorID string, log *zap.Logger) (*AsistenciaAdapter, error) {
	fetch := func() ([]models.Asistencia, error) {
		return asistencias.GetByJugador(jugadorID)
	}
	return newAsistenciaAdapter(models.RolJugador, fetch, asistencias, log)
}

// NewAsistenciaApoderado acota el fetch a los jugadores del apoderado: una
// consulta por jugador, en secuencia, concatenadas en ese mismo orden.
func NewAsistenciaApoderado(asistencias service.AsistenciaService, jugadorIDs []string, log *zap.Logger) (*AsistenciaAdapter, error) {
	fetch := func() ([]models.Asistencia, error) {
		var todas []models.Asistencia
		for _, jugadorID := range jugadorIDs {
			propias, err := asistencias.GetByJugador(jugadorID)
			if err != nil {
				return nil, err
			}
			todas = append(todas, propias...)
		}
		return todas, nil
	}
	return newAsistenciaAdapter(models.RolApoderado, fetch, asistencias, log)
}

// TomarAsistencia es la acción masiva del entrenador: una creación por
// entrada, todas emitidas aunque alguna falle, y un único refresh cuando
// todas terminan, sin importar los resultados individuales.
func (ad *AsistenciaAdapter) TomarAsistencia(entrenamientoID string, fecha time.Time, entradas []service.EntradaAsistencia) error {
	if !ad.Permisos.CanCreate {
		return fmt.Errorf("el rol no puede registrar asistencias")
	}

	err := ad.asistencias.TomarAsistencia(entrenamientoID, fecha, entradas)

	if rerr := ad.Lista.Refresh(); rerr != nil {
		ad.log.Warn("refresh tras tomar asistencia falló", zap.Error(rerr))
	}

	return err
}
