package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN            string
	ServerPort       string
	Environment      string
	CORSAllowOrigins []string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:       os.Getenv("DB_DSN"),
		ServerPort:  os.Getenv("SERVER_PORT"),
		Environment: os.Getenv("APP_ENV"),
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	origins := os.Getenv("CORS_ALLOW_ORIGINS")
	if origins == "" {
		origins = "http://localhost:4200,https://eprocure.azure.com"
	}
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, origin)
		}
	}

	return cfg
}
