package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken   string
	Database   DatabaseConfig
	Translator TranslatorConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// TranslatorConfig holds translation API settings
type TranslatorConfig struct {
	URL        string
	APIKey     string
	Timeout    time.Duration
	SourceLang string
	TargetLang string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("TRANSLATE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid TRANSLATE_TIMEOUT: %w", err)
	}

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "lexibot"),
			User:     getEnv("DB_USER", "lexibot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Translator: TranslatorConfig{
			URL:        getEnv("TRANSLATE_API_URL", "http://localhost:5000/translate"),
			APIKey:     os.Getenv("TRANSLATE_API_KEY"),
			Timeout:    timeout,
			SourceLang: getEnv("SOURCE_LANG", "ru"),
			TargetLang: getEnv("TARGET_LANG", "en"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// LoadDatabase reads only the database settings; used by tooling that
// needs the store but not the bot (the seeder).
func LoadDatabase() (*DatabaseConfig, error) {
	_ = godotenv.Load()

	cfg := &DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		Name:     getEnv("DB_NAME", "lexibot"),
		User:     getEnv("DB_USER", "lexibot"),
		Password: os.Getenv("DB_PASSWORD"),
	}

	if cfg.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return c.Database.DSN()
}

// DSN returns PostgreSQL connection string
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
