package service

import (
	"time"

	"clubdeportivo/internal/models"
)

// Los tipos Cambios* describen actualizaciones parciales: solo los campos
// no nulos llegan al store, los demás conservan su valor.

type CambiosAsistencia struct {
	JugadorID       *string
	EntrenamientoID *string
	EventoID        *string
	Estado          *string
	Fecha           *time.Time
}

type CambiosEvento struct {
	Titulo        *string
	Tipo          *string
	FechaHora     *time.Time
	Lugar         *string
	OrganizadorID *string
}

type CambiosMensualidad struct {
	JugadorID        *string
	Monto            *float64
	Estado           *string
	FechaVencimiento *time.Time
	Mes              *int
	Anio             *int
	FechaPago        *time.Time
	MetodoPago       *string
}

// EntradaAsistencia es una fila del pase de lista masivo de un entrenador.
type EntradaAsistencia struct {
	JugadorID string
	Estado    string
}

type AsistenciaService interface {
	Create(asistencia models.Asistencia) (*models.Asistencia, error)
	GetAll() ([]models.Asistencia, error)
	GetByID(id string) (*models.Asistencia, error)
	Update(id string, cambios CambiosAsistencia) (*models.Asistencia, error)
	Delete(id string) error

	GetByJugador(jugadorID string) ([]models.Asistencia, error)
	GetByEntrenamiento(entrenamientoID string) ([]models.Asistencia, error)
	GetByEvento(eventoID string) ([]models.Asistencia, error)

	// TomarAsistencia emite una creación por entrada y espera a que todas
	// terminen; los fallos individuales no abortan el resto.
	TomarAsistencia(entrenamientoID string, fecha time.Time, entradas []EntradaAsistencia) error
}

type EventoService interface {
	Create(evento models.Evento) (*models.Evento, error)
	GetAll() ([]models.Evento, error)
	GetByID(id string) (*models.Evento, error)
	Update(id string, cambios CambiosEvento) (*models.Evento, error)
	// UpdateComoOrganizador rechaza ediciones de un entrenador que no
	// organiza el evento (regla del cliente, el store no la conoce).
	UpdateComoOrganizador(id, usuarioID string, cambios CambiosEvento) (*models.Evento, error)
	Delete(id string) error

	GetByOrganizador(organizadorID string) ([]models.Evento, error)
	GetProximos(windowDays int) ([]models.Evento, error)
	GetPasados() ([]models.Evento, error)
	GetByTipo(tipo string) ([]models.Evento, error)
}

type MensualidadService interface {
	Create(mensualidad models.Mensualidad) (*models.Mensualidad, error)
	GetAll() ([]models.Mensualidad, error)
	GetByID(id string) (*models.Mensualidad, error)
	Update(id string, cambios CambiosMensualidad) (*models.Mensualidad, error)
	Delete(id string) error

	GetByJugador(jugadorID string) ([]models.Mensualidad, error)
	GetByEstado(estado string) ([]models.Mensualidad, error)
	GetByPeriodo(mes, anio int) ([]models.Mensualidad, error)
	GetVencidas() ([]models.Mensualidad, error)

	// Pagar transiciona pendiente -> pagada adjuntando fecha y método.
	Pagar(id, metodoPago string, fechaPago time.Time) (*models.Mensualidad, error)
	// Anular transiciona pendiente -> anulada. Ambos destinos son terminales.
	Anular(id string) (*models.Mensualidad, error)
}

type JugadorService interface {
	GetAll() ([]models.Jugador, error)
	GetByID(id string) (*models.Jugador, error)
	GetByUsuario(usuarioID string) (*models.Jugador, error)
	GetByApoderado(apoderadoID string) ([]models.Jugador, error)
}
