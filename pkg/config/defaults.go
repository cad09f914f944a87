package config

import "strings"

// ApplyDefaults fills unset fields with defaults.
//
// Zero values are replaced; explicit values are preserved. The log level is
// normalized to uppercase for consistent internal representation.
func ApplyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
}
