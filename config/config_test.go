package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"APP_PORT", "DB_HOST", "DB_NAME", "JWT_SECRET", "NOTION_API_KEY", "NOTION_DATABASE_ID",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "timecard", cfg.DBName)
	assert.Equal(t, "dev-secret", cfg.JWTSecret)
	assert.Empty(t, cfg.NotionAPIKey)
	assert.Empty(t, cfg.NotionDatabaseID)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("NOTION_API_KEY", "secret_abc")

	cfg := Load()
	assert.Equal(t, "9000", cfg.AppPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "prod-secret", cfg.JWTSecret)
	assert.Equal(t, "secret_abc", cfg.NotionAPIKey)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "localhost", DBPort: "5432", DBUser: "postgres",
		DBPassword: "postgres", DBName: "timecard", DBSSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost user=postgres password=postgres dbname=timecard port=5432 sslmode=disable TimeZone=UTC",
		cfg.DSN(),
	)
}
