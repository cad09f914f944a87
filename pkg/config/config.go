// Package config loads and validates the shttpd configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config is the complete shttpd configuration.
//
// Configuration sources (in order of precedence):
//  1. Positional CLI arguments: <bind-address> <filesystem-root>
//  2. Environment variables (SHTTPD_*)
//  3. Configuration file (YAML or TOML)
//  4. Default values
//
// The configuration is immutable after Load returns; it is shared read-only
// by every connection goroutine.
type Config struct {
	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging"`

	// Server contains the listener and filesystem settings
	Server ServerConfig `mapstructure:"server"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive)
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`
}

// ServerConfig contains the listener and filesystem settings.
//
// Both values are checked for presence only. The bind address and the root
// path are handed to the network and filesystem layers as-is, with no
// well-formedness validation.
type ServerConfig struct {
	// BindAddress is the TCP address the listener binds, e.g. "0.0.0.0:8080"
	BindAddress string `mapstructure:"bind_address" validate:"required"`

	// Root is the filesystem root advertised at startup
	Root string `mapstructure:"root" validate:"required"`
}

// configKeys are the keys bound to SHTTPD_* environment variables.
var configKeys = []string{
	"logging.level",
	"server.bind_address",
	"server.root",
}

// Load assembles the configuration from the optional config file, the
// environment, and the positional arguments.
//
// args are the positional CLI arguments after flag parsing, in the order
// <bind-address> <filesystem-root>. They override every other source and
// are required unless the file or environment already supply both values.
func Load(configPath string, args []string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("SHTTPD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	if len(args) > 0 {
		v.Set("server.bind_address", args[0])
	}
	if len(args) > 1 {
		v.Set("server.root", args[1])
	}

	var cfg Config
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, decodeHook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
