package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	// GetConfig loads the configuration, failing if the file is missing or invalid.
	GetConfig() (Config, error)
	// GetConfigWithFallback loads the configuration, using defaults when the file is missing.
	GetConfigWithFallback() (Config, error)
	// GetConfigPath returns the config path.
	GetConfigPath() string
	// DefaultConfig returns the default configuration.
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(configPath string) Manager {
	return &realManager{
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, c.configPath)
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unset keys keep their default value
	config := c.DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration, falling back to default if the file is missing.
// A file that exists but cannot be parsed is still an error.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if errors.Is(err, ErrConfigNotFound) {
		return c.DefaultConfig(), nil
	}
	return config, err
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() Config {
	return Default()
}
