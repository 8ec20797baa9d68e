package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RestConfig is the configuration of the REST API
type RestConfig struct {
	Port     string           `yaml:"port" validate:"required"`
	Logger   LoggerSettings   `yaml:"logger"`
	Database DatabaseSettings `yaml:"database"`
	Crypto   CryptoSettings   `yaml:"crypto"`
}

// CliConfig is the configuration of the command line tool
type CliConfig struct {
	Logger LoggerSettings `yaml:"logger"`
	Crypto CryptoSettings `yaml:"crypto"`
}

// DefaultRestConfig returns a RestConfig backed by an in-memory SQLite catalogue
func DefaultRestConfig() *RestConfig {
	return &RestConfig{
		Port: "8080",
		Logger: LoggerSettings{
			LogLevel: LogLevelInfo,
			LogType:  LogTypeConsole,
		},
		Database: DatabaseSettings{
			Type: SqliteDbType,
			DSN:  ":memory:",
		},
		Crypto: DefaultCryptoSettings(),
	}
}

// DefaultCliConfig returns a CliConfig logging to the console
func DefaultCliConfig() *CliConfig {
	return &CliConfig{
		Logger: LoggerSettings{
			LogLevel: LogLevelInfo,
			LogType:  LogTypeConsole,
		},
		Crypto: DefaultCryptoSettings(),
	}
}

// Validate checks every nested settings block
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Crypto.Validate()
}

// Validate checks every nested settings block
func (c *CliConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Crypto.Validate()
}

// InitializeRestConfig loads the REST configuration from a YAML file on top of the defaults.
// An empty path yields the validated defaults.
func InitializeRestConfig(path string) (*RestConfig, error) {
	cfg := DefaultRestConfig()
	if err := loadYAML(path, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rest config: %w", err)
	}
	return cfg, nil
}

// InitializeCliConfig loads the CLI configuration from a YAML file on top of the defaults.
// An empty path yields the validated defaults.
func InitializeCliConfig(path string) (*CliConfig, error) {
	cfg := DefaultCliConfig()
	if err := loadYAML(path, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cli config: %w", err)
	}
	return cfg, nil
}

func loadYAML(path string, out interface{}) error {
	if path == "" {
		return nil
	}

	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}
