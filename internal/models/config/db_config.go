package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DatabaseConfig configuración de la BD remota
type DatabaseConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Name     string
	SSLMode  string
}

// Load carga la configuración desde variables de entorno (y .env si existe)
func Load() (*Config, error) {
	// .env es opcional; en producción todo llega por el entorno
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "development")

	AppConfig = &Config{
		Environment: env,
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			Username: getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "club-db"),
			SSLMode:  getSSLMode(env),
		},
		Settings: SettingsConfig{
			Path: getEnv("SETTINGS_PATH", "club-settings.db"),
		},
	}

	if err := validate(); err != nil {
		return nil, err
	}
	return AppConfig, nil
}

// validate comprueba los parámetros obligatorios
func validate() error {
	var errors []string

	if AppConfig.Database.Username == "" {
		errors = append(errors, "DB_USER is required")
	}

	if AppConfig.Database.Password == "" && AppConfig.Environment == "production" {
		errors = append(errors, "DB_PASSWORD is required in production")
	}

	if len(errors) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errors, ", "))
	}

	return nil
}

func getSSLMode(env string) string {
	if env == "production" {
		return "require"
	}
	return "disable"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}
