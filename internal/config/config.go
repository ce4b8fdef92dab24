// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Config struct {
	HTTPAddr       string
	TaxRate        decimal.Decimal
	Currency       currency.Unit
	CatalogURL     string
	CatalogTimeout time.Duration
	JWTSecret      string
	DatabaseURL    string
	LogLevel       string
}

// Load reads the given .env files (missing files are ignored) and then the
// process environment. Variables already set in the environment win.
func Load(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("godotenv.Load[%s]: %w", f, err)
		}
	}

	cfg := Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		CatalogURL:  getenv("CATALOG_URL", "https://api.escuelajs.co/api/v1"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
	}

	var err error

	cfg.TaxRate, err = decimal.NewFromString(getenv("TAX_RATE", "0.08"))
	if err != nil {
		return Config{}, fmt.Errorf("TAX_RATE: %w", err)
	}
	if cfg.TaxRate.IsNegative() {
		return Config{}, fmt.Errorf("TAX_RATE: must not be negative, got %s", cfg.TaxRate)
	}

	cfg.Currency, err = currency.ParseISO(getenv("CURRENCY", "USD"))
	if err != nil {
		return Config{}, fmt.Errorf("CURRENCY: %w", err)
	}

	cfg.CatalogTimeout, err = time.ParseDuration(getenv("CATALOG_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("CATALOG_TIMEOUT: %w", err)
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
