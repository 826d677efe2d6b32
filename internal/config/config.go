package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/joeshaw/envdecode"
	"github.com/shopspring/decimal"

	"github.com/idilsaglam/situs/internal/command"
)

// Config holds startup settings. Every field has a default, so an empty
// environment is valid.
type Config struct {
	DataPath            string  `env:"SITUS_DATA_PATH,default=data/ingredients.txt"`
	ExpiryThresholdDays int64   `env:"SITUS_EXPIRY_THRESHOLD_DAYS,default=3"`
	LowStockThresholdKg float64 `env:"SITUS_STOCK_THRESHOLD_KG,default=1"`
	Theme               string  `env:"SITUS_THEME,default=classic"`
	LogLevel            string  `env:"SITUS_LOG_LEVEL,default=warn"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.DataPath == "" {
		return errors.New("config: data path is empty")
	}
	if c.ExpiryThresholdDays < 0 || c.ExpiryThresholdDays > command.MaxExpiryThresholdDays {
		return fmt.Errorf("config: expiry threshold must be between 0 and %d days, got %d",
			command.MaxExpiryThresholdDays, c.ExpiryThresholdDays)
	}
	if c.LowStockThresholdKg < 0 || math.IsNaN(c.LowStockThresholdKg) || math.IsInf(c.LowStockThresholdKg, 0) {
		return fmt.Errorf("config: stock threshold must be a non-negative number, got %v", c.LowStockThresholdKg)
	}
	return nil
}

// LowStockThreshold converts the float setting for the decimal-based state.
func (c Config) LowStockThreshold() decimal.Decimal {
	return decimal.NewFromFloat(c.LowStockThresholdKg)
}
