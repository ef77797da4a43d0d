package entrenamiento

import (
	"database/sql"
	"fmt"

	"clubdeportivo/internal/errs"
	"clubdeportivo/internal/models"
	"clubdeportivo/internal/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type entrenamientoRepository struct {
	db *sqlx.DB
}

func NewEntrenamientoRepository(db *sqlx.DB) repository.EntrenamientoRepository {
	return &entrenamientoRepository{db: db}
}

const fechaLayout = "2006-01-02"

const selectEntrenamiento = `
	SELECT
		e.id, e.titulo, e.fecha, e.entrenador_id,
		e.created_at, e.updated_at,
		COALESCE(u.nombre || ' ' || u.apellido, '') AS entrenador_nombre
	FROM club.entrenamientos e
	LEFT JOIN club.usuarios u ON e.entrenador_id = u.id
`

func scanEntrenamiento(row interface{ Scan(...interface{}) error }) (*models.Entrenamiento, error) {
	var e models.Entrenamiento
	err := row.Scan(
		&e.ID, &e.Titulo, &e.Fecha, &e.EntrenadorID,
		&e.CreatedAt, &e.UpdatedAt,
		&e.EntrenadorNombre,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *entrenamientoRepository) queryMany(where string, args ...interface{}) ([]models.Entrenamiento, error) {
	query := selectEntrenamiento + where + ` ORDER BY e.fecha DESC, e.created_at DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error consultando entrenamientos: %w", err)
	}
	defer rows.Close()

	var entrenamientos []models.Entrenamiento
	for rows.Next() {
		e, err := scanEntrenamiento(rows)
		if err != nil {
			return nil, err
		}
		entrenamientos = append(entrenamientos, *e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entrenamientos, nil
}

func (r *entrenamientoRepository) Create(entrenamiento *models.Entrenamiento) (*models.Entrenamiento, error) {
	if entrenamiento.ID == "" {
		entrenamiento.ID = uuid.NewString()
	}

	query := `
		INSERT INTO club.entrenamientos
		(id, titulo, fecha, entrenador_id)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(
		query,
		entrenamiento.ID,
		entrenamiento.Titulo,
		entrenamiento.Fecha.Format(fechaLayout),
		entrenamiento.EntrenadorID,
	)
	if err != nil {
		return nil, fmt.Errorf("error creando entrenamiento: %w", err)
	}

	return r.GetByID(entrenamiento.ID)
}

func (r *entrenamientoRepository) GetAll() ([]models.Entrenamiento, error) {
	return r.queryMany("")
}

func (r *entrenamientoRepository) GetByID(id string) (*models.Entrenamiento, error) {
	e, err := scanEntrenamiento(r.db.QueryRow(selectEntrenamiento+` WHERE e.id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error obteniendo entrenamiento: %w", err)
	}
	return e, nil
}

func (r *entrenamientoRepository) GetByEntrenador(entrenadorID string) ([]models.Entrenamiento, error) {
	return r.queryMany(` WHERE e.entrenador_id = $1`, entrenadorID)
}

func (r *entrenamientoRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM club.entrenamientos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error eliminando entrenamiento: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("entrenamiento %s: %w", id, errs.ErrNoEncontrado)
	}

	return nil
}
