package jugador

import (
	"database/sql"
	"fmt"

	"clubdeportivo/internal/models"
	"clubdeportivo/internal/repository"

	"github.com/jmoiron/sqlx"
)

type jugadorRepository struct {
	db *sqlx.DB
}

func NewJugadorRepository(db *sqlx.DB) repository.JugadorRepository {
	return &jugadorRepository{db: db}
}

const selectJugador = `
	SELECT
		j.id, j.usuario_id, j.apoderado_id, j.categoria,
		j.created_at, j.updated_at,
		COALESCE(u.nombre || ' ' || u.apellido, '') AS nombre
	FROM club.jugadores j
	LEFT JOIN club.usuarios u ON j.usuario_id = u.id
`

func scanJugador(row interface{ Scan(...interface{}) error }) (*models.Jugador, error) {
	var j models.Jugador
	err := row.Scan(
		&j.ID, &j.UsuarioID, &j.ApoderadoID, &j.Categoria,
		&j.CreatedAt, &j.UpdatedAt,
		&j.Nombre,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *jugadorRepository) queryMany(where string, args ...interface{}) ([]models.Jugador, error) {
	query := selectJugador + where + ` ORDER BY nombre, j.created_at`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error consultando jugadores: %w", err)
	}
	defer rows.Close()

	var jugadores []models.Jugador
	for rows.Next() {
		j, err := scanJugador(rows)
		if err != nil {
			return nil, err
		}
		jugadores = append(jugadores, *j)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jugadores, nil
}

func (r *jugadorRepository) GetAll() ([]models.Jugador, error) {
	return r.queryMany("")
}

func (r *jugadorRepository) GetByID(id string) (*models.Jugador, error) {
	j, err := scanJugador(r.db.QueryRow(selectJugador+` WHERE j.id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error obteniendo jugador: %w", err)
	}
	return j, nil
}

func (r *jugadorRepository) GetByUsuario(usuarioID string) (*models.Jugador, error) {
	j, err := scanJugador(r.db.QueryRow(selectJugador+` WHERE j.usuario_id = $1`, usuarioID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error obteniendo jugador: %w", err)
	}
	return j, nil
}

func (r *jugadorRepository) GetByApoderado(apoderadoID string) ([]models.Jugador, error) {
	return r.queryMany(` WHERE j.apoderado_id = $1`, apoderadoID)
}
