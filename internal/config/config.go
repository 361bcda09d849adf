// Package config содержит логику чтения конфигурации приложения.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config содержит параметры запуска приложения.
type Config struct {
	LogLevel      string `env:"LOG_LEVEL"`
	CurrencyLabel string `env:"CURRENCY_LABEL"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envLogLevel := cfg.LogLevel
	envCurrencyLabel := cfg.CurrencyLabel

	flag.StringVar(&cfg.LogLevel, "l", "info", "logging level")
	flag.StringVar(&cfg.CurrencyLabel, "c", "บาท", "currency label shown next to totals")

	flag.Parse()

	if envLogLevel != "" {
		cfg.LogLevel = envLogLevel
	}
	if envCurrencyLabel != "" {
		cfg.CurrencyLabel = envCurrencyLabel
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}
