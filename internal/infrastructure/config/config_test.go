package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/uom-go/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "uom-go", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, NumericFloat64, cfg.Engine.Numeric)
	assert.Equal(t, 100, cfg.RateLimit.Burst)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
engine:
  numeric: rational
log:
  format: console
`)
	t.Setenv("UOM_ENGINE_NUMERIC", "decimal")
	t.Setenv("UOM_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, NumericDecimal, cfg.Engine.Numeric, "environment wins over file")
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_PortFallback(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "7000")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() Config {
		return Config{
			Server: ServerConfig{Port: 8080},
			Log:    LogConfig{Level: "info", Format: "json"},
			Engine: EngineConfig{Numeric: NumericRational},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"unknown numeric", func(c *Config) { c.Engine.Numeric = "bigfloat" }, false},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, false},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, false},
		{"negative burst", func(c *Config) { c.RateLimit.Burst = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestValidate_NumericHint(t *testing.T) {
	t.Parallel()

	cfg := Config{Server: ServerConfig{Port: 1}, Log: LogConfig{Format: "json"}, Engine: EngineConfig{Numeric: "x"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "float64, decimal or rational")
}
