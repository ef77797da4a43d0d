package asistencia

import (
	"database/sql"
	"fmt"

	"clubdeportivo/internal/errs"
	"clubdeportivo/internal/models"
	"clubdeportivo/internal/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type asistenciaRepository struct {
	db *sqlx.DB
}

func NewAsistenciaRepository(db *sqlx.DB) repository.AsistenciaRepository {
	return &asistenciaRepository{db: db}
}

// fecha es una columna DATE; se vincula siempre con precisión de día.
const fechaLayout = "2006-01-02"

const selectAsistencia = `
	SELECT
		a.id, a.jugador_id, a.entrenamiento_id, a.evento_id, a.estado, a.fecha,
		a.created_at, a.updated_at,
		COALESCE(u.nombre || ' ' || u.apellido, '') AS jugador_nombre,
		COALESCE(en.titulo, ev.titulo, '') AS actividad_titulo
	FROM club.asistencias a
	LEFT JOIN club.jugadores j ON a.jugador_id = j.id
	LEFT JOIN club.usuarios u ON j.usuario_id = u.id
	LEFT JOIN club.entrenamientos en ON a.entrenamiento_id = en.id
	LEFT JOIN club.eventos ev ON a.evento_id = ev.id
`

func scanAsistencia(row interface{ Scan(...interface{}) error }) (*models.Asistencia, error) {
	var a models.Asistencia
	err := row.Scan(
		&a.ID, &a.JugadorID, &a.EntrenamientoID, &a.EventoID, &a.Estado, &a.Fecha,
		&a.CreatedAt, &a.UpdatedAt,
		&a.JugadorNombre, &a.ActividadTitulo,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *asistenciaRepository) queryMany(where string, args ...interface{}) ([]models.Asistencia, error) {
	query := selectAsistencia + where + ` ORDER BY a.fecha DESC, a.created_at DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error consultando asistencias: %w", err)
	}
	defer rows.Close()

	var asistencias []models.Asistencia
	for rows.Next() {
		a, err := scanAsistencia(rows)
		if err != nil {
			return nil, err
		}
		asistencias = append(asistencias, *a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return asistencias, nil
}

func (r *asistenciaRepository) Create(asistencia *models.Asistencia) (*models.Asistencia, error) {
	if asistencia.ID == "" {
		asistencia.ID = uuid.NewString()
	}

	query := `
		INSERT INTO club.asistencias
		(id, jugador_id, entrenamiento_id, evento_id, estado, fecha)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(
		query,
		asistencia.ID,
		asistencia.JugadorID,
		asistencia.EntrenamientoID,
		asistencia.EventoID,
		asistencia.Estado,
		asistencia.Fecha.Format(fechaLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("error creando asistencia: %w", err)
	}

	// Segunda vuelta deliberada: el llamador recibe la proyección enriquecida
	// tal como la devuelve GetAll.
	return r.GetByID(asistencia.ID)
}

func (r *asistenciaRepository) GetAll() ([]models.Asistencia, error) {
	return r.queryMany("")
}

func (r *asistenciaRepository) GetByID(id string) (*models.Asistencia, error) {
	query := selectAsistencia + ` WHERE a.id = $1`

	a, err := scanAsistencia(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error obteniendo asistencia: %w", err)
	}
	return a, nil
}

func (r *asistenciaRepository) Update(id string, updates map[string]interface{}) (*models.Asistencia, error) {
	// Lista blanca de columnas actualizables
	allowedFields := map[string]bool{
		"jugador_id":       true,
		"entrenamiento_id": true,
		"evento_id":        true,
		"estado":           true,
		"fecha":            true,
	}

	query := `UPDATE club.asistencias SET updated_at = CURRENT_TIMESTAMP`
	args := []interface{}{}
	argCounter := 1

	for field, value := range updates {
		if !allowedFields[field] {
			continue
		}
		query += fmt.Sprintf(", %s = $%d", field, argCounter)
		args = append(args, value)
		argCounter++
	}

	// Un parcial vacío deja la fila intacta
	if len(args) == 0 {
		return r.GetByID(id)
	}

	query += fmt.Sprintf(" WHERE id = $%d", argCounter)
	args = append(args, id)

	if _, err := r.db.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("error actualizando asistencia: %w", err)
	}

	return r.GetByID(id)
}

func (r *asistenciaRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM club.asistencias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error eliminando asistencia: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("asistencia %s: %w", id, errs.ErrNoEncontrado)
	}

	return nil
}

func (r *asistenciaRepository) GetByJugador(jugadorID string) ([]models.Asistencia, error) {
	return r.queryMany(` WHERE a.jugador_id = $1`, jugadorID)
}

func (r *asistenciaRepository) GetByEntrenamiento(entrenamientoID string) ([]models.Asistencia, error) {
	return r.queryMany(` WHERE a.entrenamiento_id = $1`, entrenamientoID)
}

func (r *asistenciaRepository) GetByEvento(eventoID string) ([]models.Asistencia, error) {
	return r.queryMany(` WHERE a.evento_id = $1`, eventoID)
}

func (r *asistenciaRepository) GetByJugadorYEntrenamiento(jugadorID, entrenamientoID string) (*models.Asistencia, error) {
	query := selectAsistencia + ` WHERE a.jugador_id = $1 AND a.entrenamiento_id = $2`

	a, err := scanAsistencia(r.db.QueryRow(query, jugadorID, entrenamientoID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error obteniendo asistencia: %w", err)
	}
	return a, nil
}
