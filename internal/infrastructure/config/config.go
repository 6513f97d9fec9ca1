// Package config provides configuration management for the uom server
// and CLI. Values come from environment variables, an optional YAML file
// and built-in defaults, in that order of precedence.
//
// Every key can be set from the environment with the UOM_ prefix and
// dots replaced by underscores, e.g. UOM_ENGINE_NUMERIC=decimal.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/hapkiduki/uom-go/pkg/errors"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "UOM"

// Numeric representations the engine can evaluate requests in.
const (
	NumericFloat64  = "float64"
	NumericDecimal  = "decimal"
	NumericRational = "rational"
)

// ErrInvalidConfig is returned when a loaded value fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all application configuration.
type Config struct {
	// App contains application-level configuration
	App AppConfig `mapstructure:"app"`

	// Server contains HTTP server configuration
	Server ServerConfig `mapstructure:"server"`

	// Log contains logger configuration
	Log LogConfig `mapstructure:"log"`

	// Engine contains quantity engine configuration
	Engine EngineConfig `mapstructure:"engine"`

	// RateLimit contains per-client request limits for the HTTP API
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// AppConfig contains application-level configuration.
type AppConfig struct {
	// Name of the application
	Name string `mapstructure:"name"`

	// Environment the application is running in (e.g., development, production)
	Environment string `mapstructure:"environment"`

	// Version of the application
	Version string `mapstructure:"version"`

	// Debug mode flag
	Debug bool `mapstructure:"debug"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	// Host is the server bind address
	Host string `mapstructure:"host"`

	// Port is the server port
	Port int `mapstructure:"port"`

	// ReadTimeout is the maximum duration for reading the entire request
	ReadTimeout time.Duration `mapstructure:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// IdleTimeout is the keep-alive idle limit
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`

	// RequestTimeout bounds the handling of a single request
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// ShutdownTimeout is the maximum duration for graceful server shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// MaxRequestSize is the maximum allowed request body size
	MaxRequestSize int64 `mapstructure:"max_request_size"`

	// CORSAllowedOrigins is a list of allowed origins for CORS
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Addr returns the host:port the server listens on.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// LogConfig contains logger configuration.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `mapstructure:"level"`

	// Format is json or console
	Format string `mapstructure:"format"`
}

// EngineConfig contains quantity engine configuration.
type EngineConfig struct {
	// Numeric selects the representation requests are evaluated in:
	// float64, decimal or rational
	Numeric string `mapstructure:"numeric"`
}

// RateLimitConfig contains the token bucket applied per client IP.
type RateLimitConfig struct {
	// RequestsPerSecond is the refill rate; zero disables limiting
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`

	// Burst is the bucket size
	Burst int `mapstructure:"burst"`
}

// Load loads the configuration. When path is empty, a config.yaml is
// looked up in the working directory, ./configs and /etc/uom-go; a
// missing file is not an error.
//
// Parameters:
//   - path: explicit config file, or "" to search the default locations
//
// Returns:
//   - *Config: the loaded configuration
//   - error: a read, decode or ErrInvalidConfig error
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/uom-go")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "uom-go")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.debug", false)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.request_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("server.max_request_size", 1<<20) // 1MB
	v.SetDefault("server.cors_allowed_origins", []string{"*"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("engine.numeric", NumericFloat64)

	v.SetDefault("rate_limit.requests_per_second", 50.0)
	v.SetDefault("rate_limit.burst", 100)
}

// bindEnvVars binds environment variables that do not follow the prefix.
func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT")
}

// Validate checks the values Load cannot express as types.
//
// Returns:
//   - error: ErrInvalidConfig describing the first bad value
func (c *Config) Validate() error {
	switch c.Engine.Numeric {
	case NumericFloat64, NumericDecimal, NumericRational:
	default:
		return errors.WithHint(
			errors.Wrapf(ErrInvalidConfig, "engine.numeric %q", c.Engine.Numeric),
			"use float64, decimal or rational")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return errors.Wrapf(ErrInvalidConfig, "log.format %q", c.Log.Format)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.Wrapf(ErrInvalidConfig, "server.port %d", c.Server.Port)
	}
	if c.RateLimit.RequestsPerSecond < 0 || c.RateLimit.Burst < 0 {
		return errors.Wrapf(ErrInvalidConfig, "rate_limit %v/%d",
			c.RateLimit.RequestsPerSecond, c.RateLimit.Burst)
	}
	return nil
}

// MustLoad loads the configuration and panics on error.
// Use this in application entry points where configuration is required.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(errors.Wrap(err, "failed to load config"))
	}
	return cfg
}

// GetEnv gets an environment variable with a default value.
//
// Parameters:
//   - key: environment variable name
//   - defaultValue: default value if not set
//
// Returns:
//   - string: the environment variable value or default
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
