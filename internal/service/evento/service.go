package evento_service

import (
	"fmt"

	"clubdeportivo/internal/errs"
	"clubdeportivo/internal/models"
	"clubdeportivo/internal/repository"
	"clubdeportivo/internal/service"
	"clubdeportivo/internal/validation"
)

type eventoService struct {
	eventoRepo repository.EventoRepository
}

func NewEventoService(eventoRepo repository.EventoRepository) service.EventoService {
	return &eventoService{eventoRepo: eventoRepo}
}

func (s *eventoService) Create(evento models.Evento) (*models.Evento, error) {
	return s.eventoRepo.Create(&evento)
}

func (s *eventoService) GetAll() ([]models.Evento, error) {
	return s.eventoRepo.GetAll()
}

func (s *eventoService) GetByID(id string) (*models.Evento, error) {
	return s.eventoRepo.GetByID(id)
}

func (s *eventoService) Update(id string, cambios service.CambiosEvento) (*models.Evento, error) {
	updates := buildUpdates(cambios)
	if errores := validation.ValidarEventoParcial(updates); len(errores) > 0 {
		return nil, errs.NewValidationError(errores)
	}
	return s.eventoRepo.Update(id, updates)
}

func (s *eventoService) UpdateComoOrganizador(id, usuarioID string, cambios service.CambiosEvento) (*models.Evento, error) {
	evento, err := s.eventoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if evento == nil {
		return nil, fmt.Errorf("evento %s: %w", id, errs.ErrNoEncontrado)
	}
	if evento.OrganizadorID != usuarioID {
		return nil, fmt.Errorf("solo el organizador puede editar el evento %s", id)
	}

	updates := buildUpdates(cambios)
	if errores := validation.ValidarEventoParcial(updates); len(errores) > 0 {
		return nil, errs.NewValidationError(errores)
	}
	return s.eventoRepo.Update(id, updates)
}

func (s *eventoService) Delete(id string) error {
	return s.eventoRepo.Delete(id)
}

func (s *eventoService) GetByOrganizador(organizadorID string) ([]models.Evento, error) {
	return s.eventoRepo.GetByOrganizador(organizadorID)
}

func (s *eventoService) GetProximos(windowDays int) ([]models.Evento, error) {
	return s.eventoRepo.GetProximos(windowDays)
}

func (s *eventoService) GetPasados() ([]models.Evento, error) {
	return s.eventoRepo.GetPasados()
}

func (s *eventoService) GetByTipo(tipo string) ([]models.Evento, error) {
	return s.eventoRepo.GetByTipo(tipo)
}

func buildUpdates(cambios service.CambiosEvento) map[string]interface{} {
	updates := map[string]interface{}{}
	if cambios.Titulo != nil {
		updates["titulo"] = *cambios.Titulo
	}
	if cambios.Tipo != nil {
		updates["tipo"] = *cambios.Tipo
	}
	if cambios.FechaHora != nil {
		updates["fecha_hora"] = *cambios.FechaHora
	}
	if cambios.Lugar != nil {
		updates["lugar"] = *cambios.Lugar
	}
	if cambios.OrganizadorID != nil {
		updates["organizador_id"] = *cambios.OrganizadorID
	}
	return updates
}
