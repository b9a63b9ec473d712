package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML layout of the config file.
type FileConfig struct {
	Algorithm  string `toml:"algorithm"`
	LogLevel   string `toml:"log_level"`
	CellSize   int    `toml:"cell_size"`
	Format     string `toml:"format"`
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	OutputDir  string `toml:"output_dir"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.egg-symmetry/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".egg-symmetry", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("algorithm", fc.Algorithm, &cfg.Algorithm)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setInt("cell-size", fc.CellSize, &cfg.CellSize)
	s.setString("format", fc.Format, &cfg.Format)
	s.setString("foreground", fc.Foreground, &cfg.Foreground)
	s.setString("background", fc.Background, &cfg.Background)
	s.setString("output-dir", fc.OutputDir, &cfg.OutputDir)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
