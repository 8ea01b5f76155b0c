package config

import (
	"fmt"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Port        int
	DatabaseURL string
	MaxConns    int32
	MinConns    int32
	AutoMigrate bool
	LogLevel    string
	LogFormat   string
	GinMode     string
}

// Load reads the service configuration from the environment. A .env file in
// the working directory is loaded first when present.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv("DB_CONNECTION_STRING"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		GinMode:     getEnv("GIN_MODE", "release"),
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DB_CONNECTION_STRING environment variable is required")
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("GIN_MODE must be debug, release or test, got %q", cfg.GinMode)
	}

	port, err := getInt("PORT", 3000)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	maxConns, err := getInt("DB_MAX_CONNS", 25)
	if err != nil {
		return nil, err
	}
	minConns, err := getInt("DB_MIN_CONNS", 5)
	if err != nil {
		return nil, err
	}
	if minConns > maxConns {
		return nil, fmt.Errorf("DB_MIN_CONNS (%d) must not exceed DB_MAX_CONNS (%d)", minConns, maxConns)
	}
	cfg.MaxConns = int32(maxConns)
	cfg.MinConns = int32(minConns)

	autoMigrate, err := getBool("AUTO_MIGRATE", true)
	if err != nil {
		return nil, err
	}
	cfg.AutoMigrate = autoMigrate

	return cfg, nil
}

// LoadDatabaseURL is used by commands that only need a database connection.
func LoadDatabaseURL() (string, error) {
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		return "", fmt.Errorf("DB_CONNECTION_STRING environment variable is required")
	}
	return dsn, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
