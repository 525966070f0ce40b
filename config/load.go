package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/TALS/errors"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the TALS configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	return initViper()
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// ActiveConfigFile returns the config file a watcher should observe: the
// project-local tals.toml when one exists, otherwise the user config.
// Returns empty when neither is present.
func ActiveConfigFile() string {
	if projectConfig := findProjectConfig(); projectConfig != "" {
		return projectConfig
	}
	if home, err := os.UserHomeDir(); err == nil {
		userConfig := filepath.Join(home, ".config", "tals", "tals.toml")
		if _, err := os.Stat(userConfig); err == nil {
			return userConfig
		}
	}
	return ""
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// Set up environment variable binding
	v.SetEnvPrefix("TALS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults first
	SetDefaults(v)

	// Merge configs in precedence order: user -> project
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// mergeConfigFiles merges the user config (~/.config/tals/tals.toml) and any
// project-local tals.toml found by walking up from the working directory.
// Later merges win.
func mergeConfigFiles(v *viper.Viper) {
	if home, err := os.UserHomeDir(); err == nil {
		userConfig := filepath.Join(home, ".config", "tals", "tals.toml")
		if _, err := os.Stat(userConfig); err == nil {
			v.SetConfigFile(userConfig)
			v.SetConfigType("toml")
			_ = v.MergeInConfig()
		}
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		v.SetConfigFile(projectConfig)
		v.SetConfigType("toml")
		_ = v.MergeInConfig()
	}
}

// findProjectConfig searches for tals.toml by walking up the directory tree.
// Returns the path to the first config file found, or empty string if none found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, "tals.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
