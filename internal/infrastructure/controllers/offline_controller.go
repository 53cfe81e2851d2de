package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/hubward/internal/domain/commands"
	"github.com/rios0rios0/hubward/internal/domain/entities"
)

// OfflineController handles the "offline" subcommand.
type OfflineController struct {
	command commands.Offline
}

// NewOfflineController creates a new OfflineController.
func NewOfflineController(command commands.Offline) *OfflineController {
	return &OfflineController{command: command}
}

// GetBind returns the Cobra command metadata for the offline controller.
func (it *OfflineController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "offline [path]",
		Short: "Force offline mode for a working copy",
		Long: `Force offline mode: all lookups are served from the cache and no
network calls are made. The mode persists in the working copy
configuration until changed.`,
	}
}

// Execute forces offline mode.
func (it *OfflineController) Execute(cmd *cobra.Command, args []string) {
	runOfflineAction(cmd, args, it.command, commands.ActionGoOffline)
}

func runOfflineAction(
	cmd *cobra.Command,
	args []string,
	command commands.Offline,
	action commands.OfflineAction,
) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	applyRuntimeFlags(cmd, settings, nil)

	mode, actionErr := command.Execute(context.Background(), settings, commands.OfflineOptions{
		Dir:    workingDir(args),
		Action: action,
	})
	if actionErr != nil {
		logger.Errorf("failed to change offline mode: %v", actionErr)
		return
	}

	fmt.Printf("offline mode: %s\n", mode)
}
