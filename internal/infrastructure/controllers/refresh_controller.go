package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/hubward/internal/domain/commands"
	"github.com/rios0rios0/hubward/internal/domain/entities"
)

// RefreshController handles the "refresh" subcommand.
type RefreshController struct {
	command commands.Refresh
	debug   *entities.DebugState
}

// NewRefreshController creates a new RefreshController.
func NewRefreshController(command commands.Refresh, debug *entities.DebugState) *RefreshController {
	return &RefreshController{command: command, debug: debug}
}

// GetBind returns the Cobra command metadata for the refresh controller.
func (it *RefreshController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "refresh [path]",
		Short: "Re-fetch the repository record, then serve from cache",
		Long: `Re-fetch the authoritative repository record from the API, write it
through the cache, and replay the resolution from the cache only.`,
	}
}

// Execute refreshes the working copy's cached record.
func (it *RefreshController) Execute(cmd *cobra.Command, args []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	applyRuntimeFlags(cmd, settings, it.debug)

	remote, _ := cmd.Flags().GetString("remote")

	record, refreshErr := it.command.Execute(context.Background(), settings, commands.RefreshOptions{
		Dir:    workingDir(args),
		Remote: remote,
	})
	if refreshErr != nil {
		logger.Errorf("refresh failed: %v", refreshErr)
		return
	}

	if record == nil {
		fmt.Println("nothing to refresh")
		return
	}
	fmt.Printf("refreshed %s (fetched %s)\n",
		record.FullName, record.FetchedAt.Format("2006-01-02 15:04:05 MST"))
}
