// Package config loads the application configuration: an optional YAML
// file with environment-variable overrides. Loaded once at startup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Env override variable names.
const (
	EnvDataDir = "SRP_DATA_DIR"
	EnvDBPath  = "SRP_DB_PATH"
)

// Config holds the application settings.
type Config struct {
	// DataDir is where exports land by default.
	DataDir string `yaml:"data_dir"`
	// DBPath is the SQLite file backing the record store.
	DBPath string `yaml:"db_path"`
}

// Default returns the built-in configuration: everything under
// ~/.sinsa-srp.
func Default() Config {
	base := ".sinsa-srp"
	if home, err := os.UserHomeDir(); err == nil {
		base = filepath.Join(home, ".sinsa-srp")
	}
	return Config{
		DataDir: base,
		DBPath:  filepath.Join(base, "srp.db"),
	}
}

// Load reads the config file at path, falling back to defaults when path
// is empty or the file does not exist, then applies env overrides.
// POST: DataDir and DBPath are non-empty
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}

	if cfg.DataDir == "" || cfg.DBPath == "" {
		def := Default()
		if cfg.DataDir == "" {
			cfg.DataDir = def.DataDir
		}
		if cfg.DBPath == "" {
			cfg.DBPath = def.DBPath
		}
	}
	return cfg, nil
}

// EnsureDataDir creates the data directory when missing.
func (c Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0o755)
}
