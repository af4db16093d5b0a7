// Package singleton demonstrates the Singleton pattern with the two
// process-wide objects this module actually needs: configuration and a
// metrics registry.
//
// Both use sync.Once behind an accessor function. That is the idiomatic Go
// rendering of the lazy, thread-safe singleton: initialization runs exactly
// once no matter how many goroutines race on the first call, and every
// caller observes the same instance.
package singleton

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config holds the module-wide settings shared by examples and demos.
type Config struct {
	// AppName identifies the process in logs and metrics.
	AppName string `yaml:"app_name"`

	// LogLevel selects logging verbosity: "debug", "info" or "error".
	LogLevel string `yaml:"log_level"`

	// GarageDriver selects the persistence backend for the vehicle
	// demos: "memory", "sqlite" or "mysql".
	GarageDriver string `yaml:"garage_driver"`

	// GarageDSN is the data source for the selected driver.
	GarageDSN string `yaml:"garage_dsn"`
}

var (
	configMu   sync.Mutex
	configOnce = new(sync.Once)
	configPath string
	config     *Config
	configErr  error
)

// SetConfigPath sets the YAML file the singleton loads from.
//
// Must be called before the first GetConfig; calls after initialization
// have no effect until ResetConfig.
func SetConfigPath(path string) {
	configMu.Lock()
	defer configMu.Unlock()
	configPath = path
}

// GetConfig returns the process-wide configuration, loading it on first
// use.
//
// When no config path has been set, defaults are returned. When a path has
// been set but loading fails, the error is returned on this and every
// subsequent call; a failed load is not retried.
//
// Safe for concurrent use: all callers share one initialization and one
// instance.
func GetConfig() (*Config, error) {
	configMu.Lock()
	once := configOnce
	path := configPath
	configMu.Unlock()

	once.Do(func() {
		cfg := defaultConfig()
		if path != "" {
			data, err := os.ReadFile(path) // #nosec G304 -- path is operator-supplied config
			if err != nil {
				configErr = fmt.Errorf("failed to read config %s: %w", path, err)
				return
			}
			if err := yaml.Unmarshal(data, cfg); err != nil {
				configErr = fmt.Errorf("failed to parse config %s: %w", path, err)
				return
			}
		}
		config = cfg
	})

	configMu.Lock()
	defer configMu.Unlock()
	return config, configErr
}

// ResetConfig discards the singleton so the next GetConfig reinitializes.
//
// Test helper only; production code should never need to reset a
// singleton.
func ResetConfig() {
	configMu.Lock()
	defer configMu.Unlock()
	configOnce = new(sync.Once)
	config = nil
	configErr = nil
	configPath = ""
}

func defaultConfig() *Config {
	return &Config{
		AppName:      "gopatterns",
		LogLevel:     "info",
		GarageDriver: "memory",
	}
}
