package roles

import (
	"fmt"
	"strconv"
	"time"

	"clubdeportivo/internal/controller"
	"clubdeportivo/internal/errs"
	"clubdeportivo/internal/models"
	"clubdeportivo/internal/service"
	"clubdeportivo/internal/validation"

	"go.uber.org/zap"
)

var camposBusquedaMensualidad = []string{"jugador_nombre", "estado", "metodo_pago"}

func statsMensualidades(items []models.Mensualidad) map[string]int {
	stats := map[string]int{"total": len(items)}
	ahora := time.Now()
	for i := range items {
		m := &items[i]
		stats[m.Estado]++
		if m.Vencida(ahora) {
			stats["vencidas"]++
		}
	}
	return stats
}

type MensualidadAdapter struct {
	Permisos Permisos
	Lista    *controller.ListController[models.Mensualidad]
	Form     *controller.FormController[models.Mensualidad]

	mensualidades service.MensualidadService
	log           *zap.Logger
}

func newMensualidadAdapter(rol string, fetch func() ([]models.Mensualidad, error), mensualidades service.MensualidadService, log *zap.Logger) (*MensualidadAdapter, error) {
	permisos, err := PermisosPara(rol, EntidadMensualidad)
	if err != nil {
		return nil, err
	}

	lista := controller.NewList(controller.ListConfig[models.Mensualidad]{
		FetchItems:     fetch,
		CalculateStats: statsMensualidades,
		SearchFields:   camposBusquedaMensualidad,
	})
	lista.RegisterFiltro("estado", func(m models.Mensualidad, valor string) bool {
		return m.Estado == valor
	})
	lista.RegisterFiltro("anio", func(m models.Mensualidad, valor string) bool {
		anio, err := strconv.Atoi(valor)
		return err == nil && m.Anio == anio
	})

	adapter := &MensualidadAdapter{
		Permisos:      permisos,
		Lista:         lista,
		mensualidades: mensualidades,
		log:           log,
	}

	// Solo el admin crea/edita mensualidades por formulario; el apoderado
	// paga mediante la acción dedicada Pagar.
	if permisos.CanCreate {
		adapter.Form = controller.NewForm(controller.FormConfig[models.Mensualidad]{
			Validate: validation.ValidarMensualidad,
			OnSubmit: func(m models.Mensualidad, isEditing bool) error {
				if isEditing {
					if m.ID == "" {
						return errs.ErrMissingID
					}
					_, uerr := mensualidades.Update(m.ID, service.CambiosMensualidad{
						JugadorID:        &m.JugadorID,
						Monto:            &m.Monto,
						Estado:           &m.Estado,
						FechaVencimiento: &m.FechaVencimiento,
						Mes:              &m.Mes,
						Anio:             &m.Anio,
						FechaPago:        m.FechaPago,
						MetodoPago:       m.MetodoPago,
					})
					return uerr
				}
				_, cerr := mensualidades.Create(m)
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

func NewMensualidadAdmin(mensualidades service.MensualidadService, log *zap.Logger) (*MensualidadAdapter, error) {
	return newMensualidadAdapter(models.RolAdmin, mensualidades.GetAll, mensualidades, log)
}

func NewMensualidadJugador(mensualidades service.MensualidadService, jugadorID string, log *zap.Logger) (*MensualidadAdapter, error) {
	fetch := func() ([]models.Mensualidad, error) {
		return mensualidades.GetByJugador(jugadorID)
	}
	return newMensualidadAdapter(models.RolJugador, fetch, mensualidades, log)
}

// NewMensualidadApoderado: una consulta por jugador del apoderado, en
// secuencia, concatenadas en el orden recibido, sin reordenar ni mezclar.
func NewMensualidadApoderado(mensualidades service.MensualidadService, jugadorIDs []string, log *zap.Logger) (*MensualidadAdapter, error) {
	fetch := func() ([]models.Mensualidad, error) {
		var todas []models.Mensualidad
		for _, jugadorID := range jugadorIDs {
			propias, err := mensualidades.GetByJugador(jugadorID)
			if err != nil {
				return nil, err
			}
			todas = append(todas, propias...)
		}
		return todas, nil
	}
	return newMensualidadAdapter(models.RolApoderado, fetch, mensualidades, log)
}

// Pagar transiciona pendiente -> pagada adjuntando método y fecha de pago, y
// refresca la lista al terminar.
func (ad *MensualidadAdapter) Pagar(id, metodoPago string) (*models.Mensualidad, error) {
	if !ad.Permisos.CanEdit {
		return nil, fmt.Errorf("el rol no puede pagar mensualidades")
	}

	mensualidad, err := ad.mensualidades.Pagar(id, metodoPago, time.Now())
	if err != nil {
		return nil, err
	}

	if rerr := ad.Lista.Refresh(); rerr != nil {
		ad.log.Warn("refresh tras pagar falló", zap.Error(rerr))
	}
	return mensualidad, nil
}

// Anular transiciona pendiente -> anulada; reservado al admin.
func (ad *MensualidadAdapter) Anular(id string) (*models.Mensualidad, error) {
	if !ad.Permisos.CanDelete {
		return nil, fmt.Errorf("el rol no puede anular mensualidades")
	}

	mensualidad, err := ad.mensualidades.Anular(id)
	if err != nil {
		return nil, err
	}

	if rerr := ad.Lista.Refresh(); rerr != nil {
		ad.log.Warn("refresh tras anular falló", zap.Error(rerr))
	}
	return mensualidad, nil
}
