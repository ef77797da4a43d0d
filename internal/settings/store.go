// Package settings guarda los ajustes locales del dispositivo en una base
// SQLite de una sola tabla clave/valor; nada de esto vive en el store remoto.
package settings

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
)

const claveVentana = "ventana_asistencia"

// VentanaAsistencia es la franja horaria (horas del día) en la que un
// entrenador puede marcar asistencia. Se lee al arrancar y se escribe cada
// vez que el entrenador la cambia.
type VentanaAsistencia struct {
	Inicio int `json:"inicio"`
	Fin    int `json:"fin"`
}

// VentanaPorDefecto aplica cuando nunca se guardó una ventana.
var VentanaPorDefecto = VentanaAsistencia{Inicio: 8, Fin: 22}

func (v VentanaAsistencia) Valida() error {
	if v.Inicio < 0 || v.Fin > 24 || v.Inicio >= v.Fin {
		return fmt.Errorf("ventana inválida: inicio=%d fin=%d", v.Inicio, v.Fin)
	}
	return nil
}

// Permite reporta si la hora dada cae dentro de la ventana.
func (v VentanaAsistencia) Permite(hora int) bool {
	return hora >= v.Inicio && hora < v.Fin
}

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create settings directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings database: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS ajustes (
			clave TEXT PRIMARY KEY,
			valor TEXT NOT NULL
		)
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create settings table: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// VentanaAsistencia devuelve la ventana guardada, o la ventana por defecto
// si nunca se guardó una.
func (s *Store) VentanaAsistencia() (VentanaAsistencia, error) {
	var valor string
	err := s.db.QueryRow(`SELECT valor FROM ajustes WHERE clave = ?`, claveVentana).Scan(&valor)
	if err == sql.ErrNoRows {
		return VentanaPorDefecto, nil
	}
	if err != nil {
		return VentanaAsistencia{}, fmt.Errorf("failed to read setting: %w", err)
	}

	var ventana VentanaAsistencia
	if err := json.Unmarshal([]byte(valor), &ventana); err != nil {
		return VentanaAsistencia{}, fmt.Errorf("failed to decode setting: %w", err)
	}
	return ventana, nil
}

// GuardarVentana valida y persiste la ventana.
func (s *Store) GuardarVentana(ventana VentanaAsistencia) error {
	if err := ventana.Valida(); err != nil {
		return err
	}

	valor, err := json.Marshal(ventana)
	if err != nil {
		return fmt.Errorf("failed to encode setting: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO ajustes (clave, valor) VALUES (?, ?)
		ON CONFLICT(clave) DO UPDATE SET valor = excluded.valor
	`, claveVentana, string(valor))
	if err != nil {
		return fmt.Errorf("failed to write setting: %w", err)
	}
	return nil
}
