package controllers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/reqsync/internal/domain/commands"
	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

// UpdateController handles the "update-requirements" subcommand (mutating).
type UpdateController struct {
	command commands.Update
}

// NewUpdateController creates a new UpdateController.
func NewUpdateController(command commands.Update) *UpdateController {
	return &UpdateController{command: command}
}

// GetBind returns the Cobra command metadata for the update controller.
func (it *UpdateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "update-requirements <file>",
		Short: "Update pinned requirements to their latest stable versions",
		Long: `Update all dependencies in the given requirements file to their
latest stable versions.

Only exact pins (name==version) and unpinned names are touched;
version ranges, skipped packages, hidden packages, comments, and
VCS installs pass through byte-for-byte. The file is rewritten in
place once the full set of decisions is resolved.`,
	}
}

// Execute runs the mutating mode and reports every applied change.
func (it *UpdateController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	file := args[0]
	skipPackages, _ := cmd.Flags().GetStringSlice("skip-packages")

	changes, updateErr := it.command.Execute(cmd.Context(), settings, commands.UpdateOptions{
		File:         file,
		SkipPackages: skipPackages,
	})
	if updateErr != nil {
		return updateErr
	}

	if len(changes) == 0 {
		color.Green("All dependencies in %s are up-to-date.", file)
		return nil
	}

	fmt.Printf("Updated requirements in %s:\n", file)
	for _, change := range changes {
		fmt.Printf(" * %s from %s to %s.\n",
			color.YellowString(change.Name),
			displayVersion(change.OldVersion),
			change.NewVersion,
		)
	}
	return nil
}

// AddFlags adds the update-specific flags to the given Cobra command.
func (it *UpdateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("skip-packages", nil, "Package names to ignore during the update")
}
