package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBURL        string
	HTTPPort     string
	SecretKey    string
	TemplateGlob string
}

func Load() (*Config, error) {
	// .env is optional; explicit environment wins either way.
	_ = godotenv.Load()

	cfg := &Config{
		DBURL:        os.Getenv("DB_URL"),     // postgres://user:pass@db:5432/hiredb, or a sqlite file path
		HTTPPort:     os.Getenv("HTTP_PORT"),  // e.g., :8080
		SecretKey:    os.Getenv("SECRET_KEY"), // signs the flash-message cookie
		TemplateGlob: os.Getenv("TEMPLATE_GLOB"),
	}
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = ":8080"
	}
	if cfg.SecretKey == "" {
		cfg.SecretKey = "change-this-secret-key"
	}
	if cfg.TemplateGlob == "" {
		cfg.TemplateGlob = "web/templates/*.html"
	}
	return cfg, nil
}
