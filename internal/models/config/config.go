package config

// AppConfig configuración global de la aplicación
var AppConfig *Config

// Config configuración principal
type Config struct {
	Environment string
	HTTPPort    string
	Database    DatabaseConfig
	Settings    SettingsConfig
}

// SettingsConfig ubicación del almacenamiento local de ajustes (el análogo
// del storage del dispositivo)
type SettingsConfig struct {
	Path string
}
