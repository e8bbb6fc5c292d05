package main

import (
	"errors"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/reqsync/internal"
	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

// flagAdder lets a controller contribute its own flags to its subcommand.
type flagAdder interface {
	AddFlags(cmd *cobra.Command)
}

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "reqsync",
		Short: "Pinned requirements checker and updater",
		Long: `A CLI tool that keeps pinned Python requirements files in sync with
the package registry.

It parses a requirements file line by line, queries the registry for
the latest stable version of every exact pin, and either reports the
outdated entries (check-requirements) or rewrites the file in place
(update-requirements). Version ranges, skipped packages, comments,
and VCS installs are never touched.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().String("registry-url", "",
		"Package registry base URL (overrides config)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppContext) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.ExactArgs(1),
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		if adder, ok := ctrl.(flagAdder); ok {
			adder.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	rootCmd := buildRootCommand()
	addSubcommands(rootCmd, injectAppContext())

	if err := rootCmd.Execute(); err != nil {
		// An outdated check run is a status, not a failure.
		if errors.Is(err, entities.ErrOutdated) {
			os.Exit(1)
		}
		logger.Errorf("Error executing 'reqsync': %s", err)
		os.Exit(1)
	}
}
