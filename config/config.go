// Package config holds the TALS configuration, loaded with Viper from TOML
// files and TALS_* environment variables.
package config

// Config represents the core TALS configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Model  ModelConfig  `mapstructure:"model"`
}

// ServerConfig configures the TALS command server
type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ModelConfig configures the model document source
type ModelConfig struct {
	Path  string `mapstructure:"path"`  // NTA XML model document to serve
	Watch bool   `mapstructure:"watch"` // reload the document on file change
}

// Server port constants
const (
	// DefaultServerPort is the development port (above privileged range)
	DefaultServerPort = 9750
)
