package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

// loadSettings resolves the run configuration: an explicit --config path
// wins, then an auto-detected config file, then defaults. Flag overrides
// are applied on top.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	configPath, _ := cmd.Flags().GetString("config")

	var settings *entities.Settings
	switch {
	case configPath != "":
		loaded, err := entities.NewSettings(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		settings = loaded
	default:
		if found, err := entities.FindConfigFile(); err == nil {
			logger.Debugf("Using config file: %s", found)
			loaded, loadErr := entities.NewSettings(found)
			if loadErr != nil {
				return nil, fmt.Errorf("failed to load config: %w", loadErr)
			}
			settings = loaded
		} else {
			settings = entities.DefaultSettings()
		}
	}

	if registryURL, _ := cmd.Flags().GetString("registry-url"); registryURL != "" {
		settings.RegistryURL = registryURL
	}

	return settings, nil
}
