package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("MONETARY_FROM_DENOM", "ueur")
	t.Setenv("MONETARY_FROM_DECIMALS", "6")
	t.Setenv("MONETARY_TO_DENOM", "uusd")
	t.Setenv("MONETARY_TO_DECIMALS", "6")
	t.Setenv("MONETARY_RATE", "1.08")
	t.Setenv("MONETARY_ROUNDING", "CEIL")
	t.Setenv("MONETARY_LOG_LEVEL", "debug")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		FromDenom:    "ueur",
		FromDecimals: 6,
		ToDenom:      "uusd",
		ToDecimals:   6,
		Rate:         "1.08",
		Rounding:     "ceil",
		LogLevel:     "debug",
	}, cfg)
	assert.True(t, cfg.Precise())
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("MONETARY_FROM_DENOM", "uatom")
	t.Setenv("MONETARY_TO_DENOM", "uosmo")
	t.Setenv("MONETARY_RATE", "12.5")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, NoDecimals, cfg.FromDecimals)
	assert.Equal(t, NoDecimals, cfg.ToDecimals)
	assert.Equal(t, "floor", cfg.Rounding)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.False(t, cfg.Precise())
}

func TestLoadConfig_File(t *testing.T) {
	name := filepath.Join(t.TempDir(), "monetary.env")
	data := "MONETARY_FROM_DENOM=ujuno\nMONETARY_TO_DENOM=uatom\nMONETARY_RATE=0.25\nMONETARY_TO_DECIMALS=6\n"
	require.NoError(t, os.WriteFile(name, []byte(data), 0o600))

	// godotenv sets variables in the process environment.
	for _, key := range []string{"MONETARY_FROM_DENOM", "MONETARY_TO_DENOM", "MONETARY_RATE", "MONETARY_TO_DECIMALS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	// Actual environment variables take precedence.
	t.Setenv("MONETARY_RATE", "0.5")

	cfg, err := LoadConfig(name)
	require.NoError(t, err)
	assert.Equal(t, "ujuno", cfg.FromDenom)
	assert.Equal(t, "uatom", cfg.ToDenom)
	assert.Equal(t, "0.5", cfg.Rate)
	assert.Equal(t, 6, cfg.ToDecimals)
	assert.Equal(t, NoDecimals, cfg.FromDecimals)
}

func TestLoadConfig_Files(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, "local.env")
	shared := filepath.Join(dir, "shared.env")
	require.NoError(t, os.WriteFile(local, []byte("MONETARY_RATE=1.5\n"), 0o600))
	require.NoError(t, os.WriteFile(shared, []byte("MONETARY_FROM_DENOM=ueur\nMONETARY_TO_DENOM=uusd\nMONETARY_RATE=2\n"), 0o600))

	for _, key := range []string{"MONETARY_FROM_DENOM", "MONETARY_TO_DENOM", "MONETARY_RATE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	// A missing file does not stop the following ones from loading.
	cfg, err := LoadConfig(filepath.Join(dir, "missing.env"), local, shared)
	require.NoError(t, err)
	assert.Equal(t, "ueur", cfg.FromDenom)
	assert.Equal(t, "uusd", cfg.ToDenom)
	assert.Equal(t, "1.5", cfg.Rate)
}

func TestLoadConfig_Error(t *testing.T) {
	tests := map[string]map[string]string{
		"missing denom": {"MONETARY_TO_DENOM": "uusd", "MONETARY_RATE": "1"},
		"missing rate":  {"MONETARY_FROM_DENOM": "ueur", "MONETARY_TO_DENOM": "uusd"},
		"invalid rate":  {"MONETARY_FROM_DENOM": "ueur", "MONETARY_TO_DENOM": "uusd", "MONETARY_RATE": "abc"},
		"rounding":      {"MONETARY_FROM_DENOM": "ueur", "MONETARY_TO_DENOM": "uusd", "MONETARY_RATE": "1", "MONETARY_ROUNDING": "half"},
		"decimals":      {"MONETARY_FROM_DENOM": "ueur", "MONETARY_TO_DENOM": "uusd", "MONETARY_RATE": "1", "MONETARY_FROM_DECIMALS": "-2"},
		"log level":     {"MONETARY_FROM_DENOM": "ueur", "MONETARY_TO_DENOM": "uusd", "MONETARY_RATE": "1", "MONETARY_LOG_LEVEL": "trace"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"MONETARY_FROM_DENOM", "MONETARY_TO_DENOM", "MONETARY_RATE"} {
				t.Setenv(key, "")
			}
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
