package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultRegistryType is the only registry type shipped by default.
	DefaultRegistryType = "pypi"
	// DefaultRegistryURL is the public PyPI instance.
	DefaultRegistryURL = "https://pypi.org"

	defaultTimeoutSeconds = 15
	defaultConcurrency    = 8
)

// Settings is the explicit run configuration passed into the commands at
// construction time. There is no hidden process-wide state: everything the
// engine needs comes from here or from flags merged in by the controllers.
type Settings struct {
	RegistryType   string   `yaml:"registry_type"`
	RegistryURL    string   `yaml:"registry_url"`
	SkipPackages   []string `yaml:"skip_packages"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
	Concurrency    int      `yaml:"concurrency"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		RegistryType:   DefaultRegistryType,
		RegistryURL:    DefaultRegistryURL,
		TimeoutSeconds: defaultTimeoutSeconds,
		Concurrency:    defaultConcurrency,
	}
}

// NewSettings reads and parses a configuration file, filling unset values
// with their defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, unmarshalErr)
	}

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path of the first file found or an error if none exists.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{".", ".config"}
	if homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	patterns := []string{
		".reqsync.yaml",
		".reqsync.yml",
		"reqsync.yaml",
		"reqsync.yml",
	}

	for _, loc := range locations {
		for _, pattern := range patterns {
			p := filepath.Join(loc, pattern)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func (s *Settings) validate() error {
	if s.RegistryType == "" {
		return errors.New("registry_type must not be empty")
	}
	if s.RegistryURL == "" {
		return errors.New("registry_url must not be empty")
	}
	if s.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", s.TimeoutSeconds)
	}
	if s.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", s.Concurrency)
	}
	return nil
}
