package mensualidad_service

import (
	"fmt"
	"time"

	"clubdeportivo/internal/errs"
	"clubdeportivo/internal/models"
	"clubdeportivo/internal/repository"
	"clubdeportivo/internal/service"
	"clubdeportivo/internal/validation"
)

const fechaLayout = "2006-01-02"

type mensualidadService struct {
	mensualidadRepo repository.MensualidadRepository
}

func NewMensualidadService(mensualidadRepo repository.MensualidadRepository) service.MensualidadService {
	return &mensualidadService{mensualidadRepo: mensualidadRepo}
}

func (s *mensualidadService) Create(mensualidad models.Mensualidad) (*models.Mensualidad, error) {
	if mensualidad.Estado == "" {
		mensualidad.Estado = models.MensualidadPendiente
	}
	return s.mensualidadRepo.Create(&mensualidad)
}

func (s *mensualidadService) GetAll() ([]models.Mensualidad, error) {
	return s.mensualidadRepo.GetAll()
}

func (s *mensualidadService) GetByID(id string) (*models.Mensualidad, error) {
	return s.mensualidadRepo.GetByID(id)
}

func (s *mensualidadService) Update(id string, cambios service.CambiosMensualidad) (*models.Mensualidad, error) {
	updates := map[string]interface{}{}
	if cambios.JugadorID != nil {
		updates["jugador_id"] = *cambios.JugadorID
	}
	if cambios.Monto != nil {
		updates["monto"] = *cambios.Monto
	}
	if cambios.Estado != nil {
		updates["estado"] = *cambios.Estado
	}
	if cambios.FechaVencimiento != nil {
		updates["fecha_vencimiento"] = cambios.FechaVencimiento.Format(fechaLayout)
	}
	if cambios.Mes != nil {
		updates["mes"] = *cambios.Mes
	}
	if cambios.Anio != nil {
		updates["anio"] = *cambios.Anio
	}
	if cambios.FechaPago != nil {
		updates["fecha_pago"] = cambios.FechaPago.Format(fechaLayout)
	}
	if cambios.MetodoPago != nil {
		updates["metodo_pago"] = *cambios.MetodoPago
	}

	if errores := validation.ValidarMensualidadParcial(updates); len(errores) > 0 {
		return nil, errs.NewValidationError(errores)
	}

	return s.mensualidadRepo.Update(id, updates)
}

func (s *mensualidadService) Delete(id string) error {
	return s.mensualidadRepo.Delete(id)
}

func (s *mensualidadService) GetByJugador(jugadorID string) ([]models.Mensualidad, error) {
	return s.mensualidadRepo.GetByJugador(jugadorID)
}

func (s *mensualidadService) GetByEstado(estado string) ([]models.Mensualidad, error) {
	return s.mensualidadRepo.GetByEstado(estado)
}

func (s *mensualidadService) GetByPeriodo(mes, anio int) ([]models.Mensualidad, error) {
	return s.mensualidadRepo.GetByPeriodo(mes, anio)
}

func (s *mensualidadService) GetVencidas() ([]models.Mensualidad, error) {
	return s.mensualidadRepo.GetVencidas()
}

// Pagar solo acepta mensualidades pendientes; no existe des-pagar.
func (s *mensualidadService) Pagar(id, metodoPago string, fechaPago time.Time) (*models.Mensualidad, error) {
	mensualidad, err := s.pendiente(id)
	if err != nil {
		return nil, err
	}

	return s.mensualidadRepo.Update(mensualidad.ID, map[string]interface{}{
		"estado":      models.MensualidadPagada,
		"fecha_pago":  fechaPago.Format(fechaLayout),
		"metodo_pago": metodoPago,
	})
}

// Anular solo acepta mensualidades pendientes; no existe des-anular.
func (s *mensualidadService) Anular(id string) (*models.Mensualidad, error) {
	mensualidad, err := s.pendiente(id)
	if err != nil {
		return nil, err
	}

	return s.mensualidadRepo.Update(mensualidad.ID, map[string]interface{}{
		"estado": models.MensualidadAnulada,
	})
}

func (s *mensualidadService) pendiente(id string) (*models.Mensualidad, error) {
	mensualidad, err := s.mensualidadRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mensualidad == nil {
		return nil, fmt.Errorf("mensualidad %s: %w", id, errs.ErrNoEncontrado)
	}
	if mensualidad.Estado != models.MensualidadPendiente {
		return nil, fmt.Errorf("mensualidad %s en estado %s: %w", id, mensualidad.Estado, errs.ErrEstadoFinal)
	}
	return mensualidad, nil
}
