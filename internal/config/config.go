package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	DataDir       string `env:"DATA_DIR" envDefault:"data"`
	CompaniesFile string `env:"COMPANIES_FILE"`
	PriceFile     string `env:"PRICE_FILE"`
	OutputDir     string `env:"OUTPUT_DIR" envDefault:"output"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// The two workbooks live in the data dir unless pointed elsewhere.
	if cfg.CompaniesFile == "" {
		cfg.CompaniesFile = filepath.Join(cfg.DataDir, "companies.xlsx")
	}
	if cfg.PriceFile == "" {
		cfg.PriceFile = filepath.Join(cfg.DataDir, "price.xlsx")
	}

	return &cfg, nil
}
