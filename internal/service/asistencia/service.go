package asistencia_service

import (
	"fmt"
	"sync"
	"time"

	"clubdeportivo/internal/errs"
	"clubdeportivo/internal/models"
	"clubdeportivo/internal/repository"
	"clubdeportivo/internal/service"
	"clubdeportivo/internal/validation"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const fechaLayout = "2006-01-02"

type asistenciaService struct {
	asistenciaRepo    repository.AsistenciaRepository
	entrenamientoRepo repository.EntrenamientoRepository
	log               *zap.Logger
}

func NewAsistenciaService(asistenciaRepo repository.AsistenciaRepository, entrenamientoRepo repository.EntrenamientoRepository, log *zap.Logger) service.AsistenciaService {
	return &asistenciaService{
		asistenciaRepo:    asistenciaRepo,
		entrenamientoRepo: entrenamientoRepo,
		log:               log,
	}
}

func (s *asistenciaService) Create(asistencia models.Asistencia) (*models.Asistencia, error) {
	return s.asistenciaRepo.Create(&asistencia)
}

func (s *asistenciaService) GetAll() ([]models.Asistencia, error) {
	return s.asistenciaRepo.GetAll()
}

func (s *asistenciaService) GetByID(id string) (*models.Asistencia, error) {
	return s.asistenciaRepo.GetByID(id)
}

func (s *asistenciaService) Update(id string, cambios service.CambiosAsistencia) (*models.Asistencia, error) {
	updates := map[string]interface{}{}
	if cambios.JugadorID != nil {
		updates["jugador_id"] = *cambios.JugadorID
	}
	if cambios.EntrenamientoID != nil {
		updates["entrenamiento_id"] = *cambios.EntrenamientoID
	}
	if cambios.EventoID != nil {
		updates["evento_id"] = *cambios.EventoID
	}
	if cambios.Estado != nil {
		updates["estado"] = *cambios.Estado
	}
	if cambios.Fecha != nil {
		updates["fecha"] = cambios.Fecha.Format(fechaLayout)
	}

	if errores := validation.ValidarAsistenciaParcial(updates); len(errores) > 0 {
		return nil, errs.NewValidationError(errores)
	}

	return s.asistenciaRepo.Update(id, updates)
}

func (s *asistenciaService) Delete(id string) error {
	return s.asistenciaRepo.Delete(id)
}

func (s *asistenciaService) GetByJugador(jugadorID string) ([]models.Asistencia, error) {
	return s.asistenciaRepo.GetByJugador(jugadorID)
}

func (s *asistenciaService) GetByEntrenamiento(entrenamientoID string) ([]models.Asistencia, error) {
	return s.asistenciaRepo.GetByEntrenamiento(entrenamientoID)
}

func (s *asistenciaService) GetByEvento(eventoID string) ([]models.Asistencia, error) {
	return s.asistenciaRepo.GetByEvento(eventoID)
}

// TomarAsistencia emite las N creaciones en paralelo y espera a que todas
// terminen. Un fallo individual no cancela las demás ni se revierte nada;
// los errores se agregan y el llamador decide cómo presentarlos.
func (s *asistenciaService) TomarAsistencia(entrenamientoID string, fecha time.Time, entradas []service.EntradaAsistencia) error {
	entrenamiento, err := s.entrenamientoRepo.GetByID(entrenamientoID)
	if err != nil {
		return err
	}
	if entrenamiento == nil {
		return fmt.Errorf("entrenamiento %s: %w", entrenamientoID, errs.ErrNoEncontrado)
	}

	return s.crearTodas(entrenamientoID, fecha, entradas)
}

func (s *asistenciaService) crearTodas(entrenamientoID string, fecha time.Time, entradas []service.EntradaAsistencia) error {
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		err error
	)

	for _, entrada := range entradas {
		wg.Add(1)
		go func(entrada service.EntradaAsistencia) {
			defer wg.Done()

			asistencia := models.Asistencia{
				JugadorID:       entrada.JugadorID,
				EntrenamientoID: &entrenamientoID,
				Estado:          entrada.Estado,
				Fecha:           fecha,
			}
			if _, cerr := s.asistenciaRepo.Create(&asistencia); cerr != nil {
				s.log.Error("fallo creando asistencia",
					zap.String("jugador_id", entrada.JugadorID),
					zap.String("entrenamiento_id", entrenamientoID),
					zap.Error(cerr),
				)
				mu.Lock()
				err = multierr.Append(err, cerr)
				mu.Unlock()
			}
		}(entrada)
	}

	wg.Wait()
	return err
}
