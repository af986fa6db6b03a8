// Package config manages environment variables.
//
// It reads variables from the process environment (and the `.env` file
// when one exists), loads them into structured Go types and validates
// that required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into
	// the process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the TRAVEL_ prefix. Keys are lowercased, the
	prefix is removed and a double underscore marks one level of nesting:

	  TRAVEL_SERVER__PORT            -> server.port          -> Config.Server.Port
	  TRAVEL_DATABASE__MAX_OPEN_CONNS -> database.max_open_conns
*/

const (
	// EnvPrefix is the prefix every configuration variable must carry.
	EnvPrefix = "TRAVEL_"

	// ServiceName tags logs and New Relic transactions.
	ServiceName = "travel-api"

	// DriverPostgres selects the pgx connection pool.
	DriverPostgres = "postgres"

	// DriverSQLite selects the sqlite3 store (file-backed or ":memory:").
	DriverSQLite = "sqlite"
)

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected by LoadConfig.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig selects the relational store and holds its connection
// parameters.
//
// With Driver "sqlite" only Path matters: a file name gives a file-backed
// store, ":memory:" an in-memory one. With Driver "postgres" the network
// parameters are required and the pool tuning values apply.
type DatabaseConfig struct {
	Driver          string `koanf:"driver" validate:"required,oneof=postgres sqlite"`
	Path            string `koanf:"path" validate:"required_if=Driver sqlite"`
	Host            string `koanf:"host" validate:"required_if=Driver postgres"`
	Port            int    `koanf:"port" validate:"required_if=Driver postgres"`
	User            string `koanf:"user" validate:"required_if=Driver postgres"`
	Password        string `koanf:"password" validate:"required_if=Driver postgres"`
	Name            string `koanf:"name" validate:"required_if=Driver postgres"`
	SSLMode         string `koanf:"ssl_mode" validate:"required_if=Driver postgres"`
	MaxOpenConns    int    `koanf:"max_open_conns"`
	MaxIdleConns    int    `koanf:"max_idle_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time"`
}

// envKey converts a raw environment variable name into a koanf key path.
//
// Example:
//
//	TRAVEL_DATABASE__SSL_MODE -> database.ssl_mode
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, validates it, applies defaults and returns the result.
//
// Behavior summary:
//   - Loads env vars with prefix TRAVEL_
//   - Unmarshals into Config
//   - Validates required config blocks/fields
//   - Starts from the default observability block
//   - Overrides observability service name + environment
//   - Validates observability config as well
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	// Comma separated values become slices so CORS origins can be given
	// as TRAVEL_SERVER__CORS_ALLOWED_ORIGINS=http://a,http://b.
	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, any) {
		if strings.Contains(value, ",") {
			return envKey(key), strings.Split(value, ",")
		}
		return envKey(key), value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	// Seeding the defaults keeps unset observability keys at their
	// default value when only a few of them come from the environment.
	mainConfig := &Config{Observability: DefaultObservabilityConfig()}

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := mainConfig.Validate(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// Validate runs the struct-tag validation, injects the default observability
// block when it is missing and then applies the observability rules.
//
// It is exported so configs built in code (tests, tools) go through the
// same checks as the ones read from the environment.
func (c *Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// It's a pointer field, so nil means "missing".
	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}

	// Force service name and environment so logs and traces see
	// consistent naming regardless of what the user set.
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env

	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("invalid observability config: %w", err)
	}

	return nil
}

// IsLocal reports whether the app runs on a developer machine. SQL query
// logging and console-formatted logs are only enabled there.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}
