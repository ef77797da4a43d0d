package evento

import (
	"database/sql"
	"fmt"
	"time"

	"clubdeportivo/internal/errs"
	"clubdeportivo/internal/models"
	"clubdeportivo/internal/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type eventoRepository struct {
	db *sqlx.DB
}

func NewEventoRepository(db *sqlx.DB) repository.EventoRepository {
	return &eventoRepository{db: db}
}

// fecha_hora es TIMESTAMPTZ y viaja como instante ISO-8601 completo.
const selectEvento = `
	SELECT
		e.id, e.titulo, e.tipo, e.fecha_hora, e.lugar, e.organizador_id,
		e.created_at, e.updated_at,
		COALESCE(u.nombre || ' ' || u.apellido, '') AS organizador_nombre
	FROM club.eventos e
	LEFT JOIN club.usuarios u ON e.organizador_id = u.id
`

func scanEvento(row interface{ Scan(...interface{}) error }) (*models.Evento, error) {
	var e models.Evento
	err := row.Scan(
		&e.ID, &e.Titulo, &e.Tipo, &e.FechaHora, &e.Lugar, &e.OrganizadorID,
		&e.CreatedAt, &e.UpdatedAt,
		&e.OrganizadorNombre,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventoRepository) queryMany(where string, args ...interface{}) ([]models.Evento, error) {
	query := selectEvento + where + ` ORDER BY e.fecha_hora DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error consultando eventos: %w", err)
	}
	defer rows.Close()

	var eventos []models.Evento
	for rows.Next() {
		e, err := scanEvento(rows)
		if err != nil {
			return nil, err
		}
		eventos = append(eventos, *e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return eventos, nil
}

func (r *eventoRepository) Create(evento *models.Evento) (*models.Evento, error) {
	if evento.ID == "" {
		evento.ID = uuid.NewString()
	}

	query := `
		INSERT INTO club.eventos
		(id, titulo, tipo, fecha_hora, lugar, organizador_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(
		query,
		evento.ID,
		evento.Titulo,
		evento.Tipo,
		evento.FechaHora,
		evento.Lugar,
		evento.OrganizadorID,
	)
	if err != nil {
		return nil, fmt.Errorf("error creando evento: %w", err)
	}

	return r.GetByID(evento.ID)
}

func (r *eventoRepository) GetAll() ([]models.Evento, error) {
	return r.queryMany("")
}

func (r *eventoRepository) GetByID(id string) (*models.Evento, error) {
	query := selectEvento + ` WHERE e.id = $1`

	e, err := scanEvento(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error obteniendo evento: %w", err)
	}
	return e, nil
}

func (r *eventoRepository) Update(id string, updates map[string]interface{}) (*models.Evento, error) {
	allowedFields := map[string]bool{
		"titulo":         true,
		"tipo":           true,
		"fecha_hora":     true,
		"lugar":          true,
		"organizador_id": true,
	}

	query := `UPDATE club.eventos SET updated_at = CURRENT_TIMESTAMP`
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

	if len(args) == 0 {
		return r.GetByID(id)
	}

	query += fmt.Sprintf(" WHERE id = $%d", argCounter)
	args = append(args, id)

	if _, err := r.db.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("error actualizando evento: %w", err)
	}

	return r.GetByID(id)
}

func (r *eventoRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM club.eventos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error eliminando evento: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("evento %s: %w", id, errs.ErrNoEncontrado)
	}

	return nil
}

func (r *eventoRepository) GetByOrganizador(organizadorID string) ([]models.Evento, error) {
	return r.queryMany(` WHERE e.organizador_id = $1`, organizadorID)
}

func (r *eventoRepository) GetProximos(windowDays int) ([]models.Evento, error) {
	hasta := time.Now().AddDate(0, 0, windowDays)
	return r.queryMany(` WHERE e.fecha_hora >= $1 AND e.fecha_hora <= $2`, time.Now(), hasta)
}

func (r *eventoRepository) GetPasados() ([]models.Evento, error) {
	return r.queryMany(` WHERE e.fecha_hora < $1`, time.Now())
}

func (r *eventoRepository) GetByTipo(tipo string) ([]models.Evento, error) {
	return r.queryMany(` WHERE e.tipo = $1`, tipo)
}
