package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// NoDecimals marks a currency whose number of decimal places is unknown.
const NoDecimals = -1

// Config holds converter configuration.
type Config struct {
	FromDenom    string `mapstructure:"FROM_DENOM" validate:"required"`
	FromDecimals int    `mapstructure:"FROM_DECIMALS" validate:"gte=-1,lte=38"`
	ToDenom      string `mapstructure:"TO_DENOM" validate:"required"`
	ToDecimals   int    `mapstructure:"TO_DECIMALS" validate:"gte=-1,lte=38"`
	Rate         string `mapstructure:"RATE" validate:"required,numeric"`
	Rounding     string `mapstructure:"ROUNDING" validate:"oneof=floor ceil"`
	LogLevel     string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// Precise returns true if decimal places of both currencies are known.
func (c *Config) Precise() bool {
	return c.FromDecimals != NoDecimals && c.ToDecimals != NoDecimals
}

// Level returns the configured log level.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// LoadConfig loads configuration from environment variables prefixed with
// MONETARY_, and from dotenv files if present.
// Without arguments, LoadConfig reads .env.
// Missing files are skipped. Later files do not override earlier ones,
// and actual environment variables take precedence over all files.
func LoadConfig(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// Attempt to load each file, ignore error if it doesn't exist
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.SetEnvPrefix("MONETARY")
	v.SetDefault("FROM_DECIMALS", NoDecimals)
	v.SetDefault("TO_DECIMALS", NoDecimals)
	v.SetDefault("ROUNDING", "floor")
	v.SetDefault("LOG_LEVEL", "info")
	for _, key := range []string{"FROM_DENOM", "TO_DENOM", "RATE"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %v: %w", key, err)
		}
	}
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	cfg.Rounding = strings.ToLower(cfg.Rounding)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}
	return cfg, nil
}
