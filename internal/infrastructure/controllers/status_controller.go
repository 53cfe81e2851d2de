package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/hubward/internal/domain/commands"
	"github.com/rios0rios0/hubward/internal/domain/entities"
)

// StatusController handles the "status" subcommand.
type StatusController struct {
	command commands.Status
	debug   *entities.DebugState
}

// NewStatusController creates a new StatusController.
func NewStatusController(command commands.Status, debug *entities.DebugState) *StatusController {
	return &StatusController{command: command, debug: debug}
}

// GetBind returns the Cobra command metadata for the status controller.
func (it *StatusController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "status [path]",
		Short: "Show the GitHub integration status of a working copy",
		Long: `Show the offline mode, the parsed remote identity, the API
availability, and the helper preconditions for a working copy.`,
	}
}

// Execute prints the status report.
func (it *StatusController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	applyRuntimeFlags(cmd, settings, it.debug)

	remote, _ := cmd.Flags().GetString("remote")

	report, statusErr := it.command.Execute(ctx, settings, commands.StatusOptions{
		Dir:     workingDir(args),
		Remote:  remote,
		Confirm: confirmGoOffline,
	})
	if statusErr != nil {
		logger.Errorf("status failed: %v", statusErr)
		return
	}

	if !report.Enabled {
		fmt.Println("integration: disabled for this working copy")
		return
	}

	fmt.Println("integration: enabled")
	fmt.Printf("mode:        %s\n", report.Mode)
	if report.Identity != nil {
		fmt.Printf("repository:  %s on %s\n", report.Identity.Slug(), report.Identity.Domain)
	} else {
		fmt.Println("repository:  none (remote is not a recognized GitHub remote)")
	}
	fmt.Printf("api:         %s\n", availabilityLabel(report.Available))
	if report.HelperOK {
		fmt.Println("helper:      ok")
	} else {
		fmt.Printf("helper:      %v\n", report.HelperErr)
	}
}

func availabilityLabel(available bool) string {
	if available {
		return "reachable"
	}
	return "unreachable"
}
