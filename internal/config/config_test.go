package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 8, cfg.CacheSize)
	assert.Equal(t, ".", cfg.MapDir)
	assert.Equal(t, 6*vg.Inch, cfg.MapWidth)
	assert.Equal(t, 6*vg.Inch, cfg.MapHeight)
	assert.Empty(t, cfg.MetricsTextfile)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("FARS_DATA_DIR", "/data/fars")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("FARS_CACHE_SIZE", "0")
	t.Setenv("FARS_MAP_DIR", "/tmp/maps")
	t.Setenv("FARS_MAP_WIDTH", "10in")
	t.Setenv("FARS_MAP_HEIGHT", "8in")
	t.Setenv("METRICS_TEXTFILE", "/var/lib/node_exporter/fars.prom")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/fars", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 0, cfg.CacheSize)
	assert.Equal(t, "/tmp/maps", cfg.MapDir)
	assert.Equal(t, 10*vg.Inch, cfg.MapWidth)
	assert.Equal(t, 8*vg.Inch, cfg.MapHeight)
	assert.Equal(t, "/var/lib/node_exporter/fars.prom", cfg.MetricsTextfile)
}

func TestLoad_InvalidCacheSize(t *testing.T) {
	t.Setenv("FARS_CACHE_SIZE", "-1")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FARS_CACHE_SIZE")
}

func TestLoad_NonNumericCacheSize(t *testing.T) {
	t.Setenv("FARS_CACHE_SIZE", "lots")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FARS_CACHE_SIZE")
}

func TestLoad_InvalidMapWidth(t *testing.T) {
	t.Setenv("FARS_MAP_WIDTH", "wide")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FARS_MAP_WIDTH")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FARS_DATA_DIR=/from/dotenv\n"), 0o600))
	t.Chdir(dir)
	// godotenv sets variables process-wide; t.Setenv restores the prior state afterwards.
	t.Setenv("FARS_DATA_DIR", "")
	require.NoError(t, os.Unsetenv("FARS_DATA_DIR"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/from/dotenv", cfg.DataDir)
}
