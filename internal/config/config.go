package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database: a plain file path opens an embedded SQLite database,
	// a postgres:// URL connects to an external server.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis — optional; when empty the in-memory reminder scheduler is used.
	RedisURL string `mapstructure:"REDIS_URL"`

	// Image storage
	ImageStoragePath string `mapstructure:"IMAGE_STORAGE_PATH"`

	// Reminder cadences (days)
	DiasRevisionMochila  int `mapstructure:"DIAS_REVISION_MOCHILA"`
	DiasAvisoVencimiento int `mapstructure:"DIAS_AVISO_VENCIMIENTO"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8085)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_URL", "mochila85.db")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("IMAGE_STORAGE_PATH", "/tmp/mochila85/imagenes")
	viper.SetDefault("DIAS_REVISION_MOCHILA", 30)
	viper.SetDefault("DIAS_AVISO_VENCIMIENTO", 7)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
