package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "host=localhost user=postgres dbname=eprocure")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, []string{"http://localhost:4200", "https://eprocure.azure.com"}, cfg.CORSAllowOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DSN", "host=db user=postgres dbname=eprocure")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://one.example.com, https://two.example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, []string{"https://one.example.com", "https://two.example.com"}, cfg.CORSAllowOrigins)
}
