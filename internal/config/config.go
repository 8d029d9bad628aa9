package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
	"gonum.org/v1/plot/vg"
)

// Config holds all settings, populated from environment variables and an
// optional .env file in the working directory.
type Config struct {
	DataDir   string
	LogLevel  string
	LogFormat string

	// CacheSize bounds the parsed-table cache; 0 disables it.
	CacheSize int

	// State map output.
	MapDir    string
	MapWidth  vg.Length
	MapHeight vg.Length

	// MetricsTextfile is written after each command when set.
	MetricsTextfile string
}

// Load reads configuration from the environment, applying defaults where unset.
// Variables already set in the environment win over the .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cacheSize, err := parseCacheSize()
	if err != nil {
		return nil, err
	}

	width, err := parseLength("FARS_MAP_WIDTH", "6in")
	if err != nil {
		return nil, err
	}
	height, err := parseLength("FARS_MAP_HEIGHT", "6in")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataDir:         sharedcfg.EnvOrDefault("FARS_DATA_DIR", "."),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "text"),
		CacheSize:       cacheSize,
		MapDir:          sharedcfg.EnvOrDefault("FARS_MAP_DIR", "."),
		MapWidth:        width,
		MapHeight:       height,
		MetricsTextfile: sharedcfg.EnvOrDefault("METRICS_TEXTFILE", ""),
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, errors.New("LOG_FORMAT must be json or text")
	}

	return cfg, nil
}

func parseCacheSize() (int, error) {
	s := sharedcfg.EnvOrDefault("FARS_CACHE_SIZE", "8")
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.New("invalid FARS_CACHE_SIZE")
	}
	return n, nil
}

func parseLength(key, def string) (vg.Length, error) {
	l, err := vg.ParseLength(sharedcfg.EnvOrDefault(key, def))
	if err != nil || l <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return l, nil
}
