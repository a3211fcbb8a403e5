package config

import (
	"fmt"
	"os"
)

type Config struct {
	AppPort    string
	AppEnv     string
	CORSOrigin string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret        string
	JWTRefreshSecret string

	NotionAPIKey     string
	NotionDatabaseID string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		AppPort:    get("APP_PORT", "8080"),
		AppEnv:     get("APP_ENV", "dev"),
		CORSOrigin: get("CORS_ORIGIN", "http://localhost:5173"),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", "postgres"),
		DBName:     get("DB_NAME", "timecard"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),

		JWTSecret:        get("JWT_SECRET", "dev-secret"),
		JWTRefreshSecret: get("JWT_REFRESH_SECRET", "dev-refresh-secret"),

		// Left empty, tag sync stays disabled and the rest of the app works.
		NotionAPIKey:     os.Getenv("NOTION_API_KEY"),
		NotionDatabaseID: os.Getenv("NOTION_DATABASE_ID"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
