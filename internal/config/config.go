package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port         string
	Env          string
	DatabaseDSN  string
	JWTSecret    string
	TokenTTL     time.Duration
	AdminEmail   string
	AdminLogPath string
	StaticDir    string
	CORSOrigin   string
}

func Load() Config {
	cfg := Config{
		Port:         getEnv("PORT", "3000"),
		Env:          getEnv("ENV", "development"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/learnx?parseTime=true"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		TokenTTL:     7 * 24 * time.Hour,
		AdminEmail:   getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminLogPath: getEnv("ADMIN_LOG_PATH", "data/admin-log.ndjson"),
		StaticDir:    os.Getenv("STATIC_DIR"),
		CORSOrigin:   getEnv("CORS_ORIGIN", "*"),
	}

	// A guessable fallback secret would make every issued token forgeable,
	// so refuse to start instead of defaulting.
	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET must be set")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
