// Package config loads server settings from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/units"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Storage backends
const (
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Config is the full server configuration
type Config struct {
	Server    Server
	Storage   Storage
	Rules     Rules
	Telemetry Telemetry
}

// Server configures the gRPC listener
type Server struct {
	Port            int           `env:"SHEET_PORT" envDefault:"50051"`
	ShutdownTimeout time.Duration `env:"SHEET_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	// UndoLimit bounds each sheet's undo history.
	UndoLimit int `env:"SHEET_UNDO_LIMIT" envDefault:"100"`
}

// Storage selects and configures the sheet repository
type Storage struct {
	Backend    string `env:"SHEET_STORAGE" envDefault:"redis"`
	RedisAddr  string `env:"SHEET_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB    int    `env:"SHEET_REDIS_DB" envDefault:"0"`
	SQLitePath string `env:"SHEET_SQLITE_PATH" envDefault:"sheets.db"`
}

// Telemetry configures trace export. An empty endpoint leaves tracing off.
type Telemetry struct {
	Endpoint string `env:"SHEET_OTEL_ENDPOINT"`
	Enabled  bool   `env:"SHEET_OTEL_ENABLED" envDefault:"true"`
}

// Rules are the rule switches new and loaded sheets are evaluated under
type Rules struct {
	OptionalStrength bool              `env:"SHEET_OPTIONAL_STRENGTH"`
	ReducedSwing     bool              `env:"SHEET_REDUCED_SWING"`
	OptionalThrust   bool              `env:"SHEET_OPTIONAL_THRUST"`
	OptionalIQ       bool              `env:"SHEET_OPTIONAL_IQ"`
	GurpsMetric      bool              `env:"SHEET_GURPS_METRIC"`
	WeightUnits      units.WeightUnits `env:"SHEET_WEIGHT_UNITS" envDefault:"lb"`
	InitialPoints    int               `env:"SHEET_INITIAL_POINTS" envDefault:"100"`
	Debug            bool              `env:"SHEET_DEBUG"`
}

// Settings converts the switches to engine settings
func (r Rules) Settings() rules.Settings {
	return rules.Settings{
		UseOptionalStrength:     r.OptionalStrength,
		UseReducedSwing:         r.ReducedSwing,
		UseOptionalThrustDamage: r.OptionalThrust,
		UseOptionalIQ:           r.OptionalIQ,
		UseGurpsMetric:          r.GurpsMetric,
		WeightUnits:             r.WeightUnits,
		InitialPoints:           r.InitialPoints,
		Debug:                   r.Debug,
	}
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("SHEET_PORT", c.Server.Port, 1, 65535, vb)
	if c.Server.UndoLimit <= 0 {
		vb.Field("SHEET_UNDO_LIMIT", "must be positive")
	}

	switch c.Storage.Backend {
	case BackendRedis:
		errors.ValidateRequired("SHEET_REDIS_ADDR", c.Storage.RedisAddr, vb)
	case BackendSQLite:
		errors.ValidateRequired("SHEET_SQLITE_PATH", c.Storage.SQLitePath, vb)
	default:
		vb.Fieldf("SHEET_STORAGE", "unknown backend %q", c.Storage.Backend)
	}

	if !c.Rules.WeightUnits.IsValid() {
		vb.Fieldf("SHEET_WEIGHT_UNITS", "unknown weight units %q", c.Rules.WeightUnits)
	}
	errors.ValidateNonNegative("SHEET_INITIAL_POINTS", c.Rules.InitialPoints, vb)

	return vb.Build()
}
