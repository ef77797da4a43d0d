package jugador_service

import (
	"clubdeportivo/internal/models"
	"clubdeportivo/internal/repository"
	"clubdeportivo/internal/service"
)

type jugadorService struct {
	jugadorRepo repository.JugadorRepository
}

func NewJugadorService(jugadorRepo repository.JugadorRepository) service.JugadorService {
	return &jugadorService{jugadorRepo: jugadorRepo}
}

func (s *jugadorService) GetAll() ([]models.Jugador, error) {
	return s.jugadorRepo.GetAll()
}

func (s *jugadorService) GetByID(id string) (*models.Jugador, error) {
	return s.jugadorRepo.GetByID(id)
}

func (s *jugadorService) GetByUsuario(usuarioID string) (*models.Jugador, error) {
	return s.jugadorRepo.GetByUsuario(usuarioID)
}

func (s *jugadorService) GetByApoderado(apoderadoID string) ([]models.Jugador, error) {
	return s.jugadorRepo.GetByApoderado(apoderadoID)
}
