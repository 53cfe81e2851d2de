package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/hubward/internal/domain/commands"
	"github.com/rios0rios0/hubward/internal/domain/entities"
)

// OnlineController handles the "online" subcommand.
type OnlineController struct {
	command commands.Offline
}

// NewOnlineController creates a new OnlineController.
func NewOnlineController(command commands.Offline) *OnlineController {
	return &OnlineController{command: command}
}

// GetBind returns the Cobra command metadata for the online controller.
func (it *OnlineController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "online [path]",
		Short: "Leave offline mode for a working copy",
		Long: `Leave offline mode and resume normal cache-then-network behavior.
A no-op when the working copy is already online.`,
	}
}

// Execute clears offline mode.
func (it *OnlineController) Execute(cmd *cobra.Command, args []string) {
	runOfflineAction(cmd, args, it.command, commands.ActionGoOnline)
}
