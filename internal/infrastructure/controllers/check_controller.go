package controllers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/reqsync/internal/domain/commands"
	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

// CheckController handles the "check-requirements" subcommand (report-only).
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check-requirements <file>",
		Short: "Check that all pinned requirements are up to date",
		Long: `Check that all dependencies in the given requirements file are
up to date against the package registry.

Each outdated requirement is reported with its current and latest
version. The command exits with status 1 when anything is outdated,
so it can gate CI pipelines. The file is never modified.`,
	}
}

// Execute runs the report-only mode. It returns entities.ErrOutdated when
// any requirement is behind the registry's latest stable version.
func (it *CheckController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	file := args[0]
	skipPackages, _ := cmd.Flags().GetStringSlice("skip-packages")

	changes, checkErr := it.command.Execute(cmd.Context(), settings, commands.CheckOptions{
		File:         file,
		SkipPackages: skipPackages,
	})
	if checkErr != nil {
		return checkErr
	}

	if len(changes) == 0 {
		color.Green("Requirements in %s are up to date.", file)
		return nil
	}

	color.Red("Requirements in %s are out of date:", file)
	for _, change := range changes {
		fmt.Printf(" * %s is %s latest is %s.\n",
			color.YellowString(change.Name),
			displayVersion(change.OldVersion),
			change.NewVersion,
		)
	}
	return entities.ErrOutdated
}

// AddFlags adds the check-specific flags to the given Cobra command.
func (it *CheckController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("skip-packages", nil, "Package names to ignore during the check")
}

// displayVersion renders the old version of a report row; an unpinned
// requirement has no current version.
func displayVersion(version string) string {
	if version == "" {
		return "unpinned"
	}
	return version
}
