package roles

import (
	"time"

	"clubdeportivo/internal/controller"
	"clubdeportivo/internal/errs"
	"clubdeportivo/internal/models"
	"clubdeportivo/internal/service"
	"clubdeportivo/internal/validation"

	"go.uber.org/zap"
)

var camposBusquedaEvento = []string{"titulo", "lugar", "organizador_nombre", "tipo"}

func statsEventos(items []models.Evento) map[string]int {
	stats := map[string]int{"total": len(items)}
	ahora := time.Now()
	for _, e := range items {
		stats[e.Tipo]++
		if e.FechaHora.After(ahora) {
			stats["proximos"]++
		}
	}
	return stats
}

type EventoAdapter struct {
	Permisos Permisos
	Lista    *controller.ListController[models.Evento]
	Form     *controller.FormController[models.Evento]

	eventos service.EventoService
	log     *zap.Logger
}

func newEventoAdapter(rol string, fetch func() ([]models.Evento, error), submit func(e models.Evento, isEditing bool) error, eventos service.EventoService, log *zap.Logger) (*EventoAdapter, error) {
	permisos, err := PermisosPara(rol, EntidadEvento)
	if err != nil {
		return nil, err
	}

	lista := controller.NewList(controller.ListConfig[models.Evento]{
		FetchItems:     fetch,
		CalculateStats: statsEventos,
		SearchFields:   camposBusquedaEvento,
	})
	lista.RegisterFiltro("tipo", func(e models.Evento, valor string) bool {
		return e.Tipo == valor
	})

	adapter := &EventoAdapter{
		Permisos: permisos,
		Lista:    lista,
		eventos:  eventos,
		log:      log,
	}

	if submit != nil && (permisos.CanCreate || permisos.CanEdit) {
		adapter.Form = controller.NewForm(controller.FormConfig[models.Evento]{
			Validate: validation.ValidarEvento,
			OnSubmit: submit,
			OnSuccess: func() {
				if rerr := lista.Refresh(); rerr != nil {
					log.Warn("refresh tras submit falló", zap.Error(rerr))
				}
			},
		})
	}

	return adapter, nil
}

func cambiosDesdeEvento(e models.Evento) service.CambiosEvento {
	return service.CambiosEvento{
		Titulo:        &e.Titulo,
		Tipo:          &e.Tipo,
		FechaHora:     &e.FechaHora,
		Lugar:         &e.Lugar,
		OrganizadorID: &e.OrganizadorID,
	}
}

func NewEventoAdmin(eventos service.EventoService, log *zap.Logger) (*EventoAdapter, error) {
	submit := func(e models.Evento, isEditing bool) error {
		if isEditing {
			if e.ID == "" {
				return errs.ErrMissingID
			}
			_, err := eventos.Update(e.ID, cambiosDesdeEvento(e))
			return err
		}
		_, err := eventos.Create(e)
		return err
	}
	return newEventoAdapter(models.RolAdmin, eventos.GetAll, submit, eventos, log)
}

// NewEventoEntrenador: el entrenador crea eventos propios y solo edita los
// que organiza; la regla vive en el cliente, no en el store.
func NewEventoEntrenador(eventos service.EventoService, usuarioID string, log *zap.Logger) (*EventoAdapter, error) {
	submit := func(e models.Evento, isEditing bool) error {
		if isEditing {
			if e.ID == "" {
				return errs.ErrMissingID
			}
			_, err := eventos.UpdateComoOrganizador(e.ID, usuarioID, cambiosDesdeEvento(e))
			return err
		}
		if e.OrganizadorID == "" {
			e.OrganizadorID = usuarioID
		}
		_, err := eventos.Create(e)
		return err
	}
	return newEventoAdapter(models.RolEntrenador, eventos.GetAll, submit, eventos, log)
}

func NewEventoJugador(eventos service.EventoService, log *zap.Logger) (*EventoAdapter, error) {
	return newEventoAdapter(models.RolJugador, eventos.GetAll, nil, eventos, log)
}

func NewEventoApoderado(eventos service.EventoService, log *zap.Logger) (*EventoAdapter, error) {
	return newEventoAdapter(models.RolApoderado, eventos.GetAll, nil, eventos, log)
}

// Proximos y Pasados son atajos de alcance temporal para las vistas de
// calendario; mantienen el mismo ordenamiento y enriquecimiento que GetAll.
func (ad *EventoAdapter) Proximos(windowDays int) ([]models.Evento, error) {
	return ad.eventos.GetProximos(windowDays)
}

func (ad *EventoAdapter) Pasados() ([]models.Evento, error) {
	return ad.eventos.GetPasados()
}
