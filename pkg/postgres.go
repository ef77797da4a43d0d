package database

import (
	"fmt"

	"clubdeportivo/internal/models/config"

	"github.com/jmoiron/sqlx"
)

func NewPostgres(cfg *config.Config) (*sqlx.DB, error) {
	db := cfg.Database

	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		db.Host,
		db.Port,
		db.Username,
		db.Password,
		db.Name,
		db.SSLMode,
	)

	conn, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}
