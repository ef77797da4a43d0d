package repository

import (
	"clubdeportivo/internal/models"
)

// Las lecturas por id devuelven (nil, nil) cuando la fila no existe;
// cualquier otro fallo del store se propaga sin modificar. Create inserta y
// vuelve a leer por id, de modo que el llamador siempre recibe la misma
// proyección enriquecida que GetAll. Update recibe solo los campos definidos;
// un mapa vacío no toca la fila.

type AsistenciaRepository interface {
	Create(asistencia *models.Asistencia) (*models.Asistencia, error)
	GetAll() ([]models.Asistencia, error)
	GetByID(id string) (*models.Asistencia, error)
	Update(id string, updates map[string]interface{}) (*models.Asistencia, error)
	Delete(id string) error

	GetByJugador(jugadorID string) ([]models.Asistencia, error)
	GetByEntrenamiento(entrenamientoID string) ([]models.Asistencia, error)
	GetByEvento(eventoID string) ([]models.Asistencia, error)
	GetByJugadorYEntrenamiento(jugadorID, entrenamientoID string) (*models.Asistencia, error)
}

type EventoRepository interface {
	Create(evento *models.Evento) (*models.Evento, error)
	GetAll() ([]models.Evento, error)
	GetByID(id string) (*models.Evento, error)
	Update(id string, updates map[string]interface{}) (*models.Evento, error)
	Delete(id string) error

	GetByOrganizador(organizadorID string) ([]models.Evento, error)
	GetProximos(windowDays int) ([]models.Evento, error)
	GetPasados() ([]models.Evento, error)
	GetByTipo(tipo string) ([]models.Evento, error)
}

type MensualidadRepository interface {
	Create(mensualidad *models.Mensualidad) (*models.Mensualidad, error)
	GetAll() ([]models.Mensualidad, error)
	GetByID(id string) (*models.Mensualidad, error)
	Update(id string, updates map[string]interface{}) (*models.Mensualidad, error)
	Delete(id string) error

	GetByJugador(jugadorID string) ([]models.Mensualidad, error)
	GetByEstado(estado string) ([]models.Mensualidad, error)
	GetByPeriodo(mes, anio int) ([]models.Mensualidad, error)
	GetVencidas() ([]models.Mensualidad, error)
}

type JugadorRepository interface {
	GetAll() ([]models.Jugador, error)
	GetByID(id string) (*models.Jugador, error)
	GetByUsuario(usuarioID string) (*models.Jugador, error)
	GetByApoderado(apoderadoID string) ([]models.Jugador, error)
}

type EntrenamientoRepository interface {
	Create(entrenamiento *models.Entrenamiento) (*models.Entrenamiento, error)
	GetAll() ([]models.Entrenamiento, error)
	GetByID(id string) (*models.Entrenamiento, error)
	GetByEntrenador(entrenadorID string) ([]models.Entrenamiento, error)
	Delete(id string) error
}
