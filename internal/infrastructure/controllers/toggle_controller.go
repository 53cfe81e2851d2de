package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/hubward/internal/domain/commands"
	"github.com/rios0rios0/hubward/internal/domain/entities"
)

// ToggleController handles the "toggle" subcommand.
type ToggleController struct {
	command commands.Offline
}

// NewToggleController creates a new ToggleController.
func NewToggleController(command commands.Offline) *ToggleController {
	return &ToggleController{command: command}
}

// GetBind returns the Cobra command metadata for the toggle controller.
func (it *ToggleController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "toggle [path]",
		Short: "Toggle offline mode for a working copy",
		Long:  `Toggle between online and forced-offline mode for a working copy.`,
	}
}

// Execute flips the offline mode.
func (it *ToggleController) Execute(cmd *cobra.Command, args []string) {
	runOfflineAction(cmd, args, it.command, commands.ActionToggle)
}
