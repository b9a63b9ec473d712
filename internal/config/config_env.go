package config

import "os"

// ApplyEnvConfig applies EGG_SYMMETRY_* environment variables. They override
// the config file but not explicitly set flags.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("algorithm", os.Getenv("EGG_SYMMETRY_ALGORITHM"), &cfg.Algorithm)
	s.setString("log-level", os.Getenv("EGG_SYMMETRY_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("format", os.Getenv("EGG_SYMMETRY_FORMAT"), &cfg.Format)
	s.setString("foreground", os.Getenv("EGG_SYMMETRY_FOREGROUND"), &cfg.Foreground)
	s.setString("background", os.Getenv("EGG_SYMMETRY_BACKGROUND"), &cfg.Background)
	s.setString("output-dir", os.Getenv("EGG_SYMMETRY_OUTPUT_DIR"), &cfg.OutputDir)

	return s.setIntFromString("cell-size", os.Getenv("EGG_SYMMETRY_CELL_SIZE"), &cfg.CellSize)
}

// Load layers the config file (if present) and the environment onto cfg.
// An empty path selects DefaultConfigPath; a missing default file is not an
// error, a missing explicit file is.
func Load(cfg *Config, path string, changed map[string]bool) error {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if path != "" && (explicit || FileExists(path)) {
		fc, err := LoadFileConfig(path)
		if err != nil {
			return err
		}
		ApplyFileConfig(cfg, fc, changed)
	}
	if err := ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}
	return cfg.Validate()
}
