package mensualidad

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

type mensualidadRepository struct {
	db *sqlx.DB
}

func NewMensualidadRepository(db *sqlx.DB) repository.MensualidadRepository {
	return &mensualidadRepository{db: db}
}

const fechaLayout = "2006-01-02"

const selectMensualidad = `
	SELECT
		m.id, m.jugador_id, m.monto, m.estado, m.fecha_vencimiento,
		m.mes, m.anio, m.fecha_pago, m.metodo_pago,
		m.created_at, m.updated_at,
		COALESCE(u.nombre || ' ' || u.apellido, '') AS jugador_nombre
	FROM club.mensualidades m
	LEFT JOIN club.jugadores j ON m.jugador_id = j.id
	LEFT JOIN club.usuarios u ON j.usuario_id = u.id
`

func scanMensualidad(row interface{ Scan(...interface{}) error }) (*models.Mensualidad, error) {
	var m models.Mensualidad
	err := row.Scan(
		&m.ID, &m.JugadorID, &m.Monto, &m.Estado, &m.FechaVencimiento,
		&m.Mes, &m.Anio, &m.FechaPago, &m.MetodoPago,
		&m.CreatedAt, &m.UpdatedAt,
		&m.JugadorNombre,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mensualidadRepository) queryMany(where string, args ...interface{}) ([]models.Mensualidad, error) {
	query := selectMensualidad + where + ` ORDER BY m.anio DESC, m.mes DESC, m.fecha_vencimiento DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error consultando mensualidades: %w", err)
	}
	defer rows.Close()

	var mensualidades []models.Mensualidad
	for rows.Next() {
		m, err := scanMensualidad(rows)
		if err != nil {
			return nil, err
		}
		mensualidades = append(mensualidades, *m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return mensualidades, nil
}

func (r *mensualidadRepository) Create(mensualidad *models.Mensualidad) (*models.Mensualidad, error) {
	if mensualidad.ID == "" {
		mensualidad.ID = uuid.NewString()
	}

	var fechaPago interface{}
	if mensualidad.FechaPago != nil {
		fechaPago = mensualidad.FechaPago.Format(fechaLayout)
	}

	query := `
		INSERT INTO club.mensualidades
		(id, jugador_id, monto, estado, fecha_vencimiento, mes, anio, fecha_pago, metodo_pago)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(
		query,
		mensualidad.ID,
		mensualidad.JugadorID,
		mensualidad.Monto,
		mensualidad.Estado,
		mensualidad.FechaVencimiento.Format(fechaLayout),
		mensualidad.Mes,
		mensualidad.Anio,
		fechaPago,
		mensualidad.MetodoPago,
	)
	if err != nil {
		return nil, fmt.Errorf("error creando mensualidad: %w", err)
	}

	return r.GetByID(mensualidad.ID)
}

func (r *mensualidadRepository) GetAll() ([]models.Mensualidad, error) {
	return r.queryMany("")
}

func (r *mensualidadRepository) GetByID(id string) (*models.Mensualidad, error) {
	query := selectMensualidad + ` WHERE m.id = $1`

	m, err := scanMensualidad(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error obteniendo mensualidad: %w", err)
	}
	return m, nil
}

func (r *mensualidadRepository) Update(id string, updates map[string]interface{}) (*models.Mensualidad, error) {
	allowedFields := map[string]bool{
		"jugador_id":        true,
		"monto":             true,
		"estado":            true,
		"fecha_vencimiento": true,
		"mes":               true,
		"anio":              true,
		"fecha_pago":        true,
		"metodo_pago":       true,
	}

	query := `UPDATE club.mensualidades SET updated_at = CURRENT_TIMESTAMP`
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
		return nil, fmt.Errorf("error actualizando mensualidad: %w", err)
	}

	return r.GetByID(id)
}

func (r *mensualidadRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM club.mensualidades WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error eliminando mensualidad: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("mensualidad %s: %w", id, errs.ErrNoEncontrado)
	}

	return nil
}

func (r *mensualidadRepository) GetByJugador(jugadorID string) ([]models.Mensualidad, error) {
	return r.queryMany(` WHERE m.jugador_id = $1`, jugadorID)
}

func (r *mensualidadRepository) GetByEstado(estado string) ([]models.Mensualidad, error) {
	return r.queryMany(` WHERE m.estado = $1`, estado)
}

func (r *mensualidadRepository) GetByPeriodo(mes, anio int) ([]models.Mensualidad, error) {
	return r.queryMany(` WHERE m.mes = $1 AND m.anio = $2`, mes, anio)
}

// GetVencidas filtra del lado del servidor; el corte es el día de hoy, una
// mensualidad que vence hoy todavía no está vencida.
func (r *mensualidadRepository) GetVencidas() ([]models.Mensualidad, error) {
	hoy := time.Now().Format(fechaLayout)
	return r.queryMany(` WHERE m.estado = $1 AND m.fecha_vencimiento < $2`, models.MensualidadPendiente, hoy)
}
