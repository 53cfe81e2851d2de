package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/hubward/internal/domain/commands"
	"github.com/rios0rios0/hubward/internal/domain/entities"
)

// FeaturesController handles the "features" subcommand.
type FeaturesController struct {
	command commands.Features
}

// NewFeaturesController creates a new FeaturesController.
func NewFeaturesController(command commands.Features) *FeaturesController {
	return &FeaturesController{command: command}
}

// GetBind returns the Cobra command metadata for the features controller.
func (it *FeaturesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "features [feature...]",
		Short: "List feature resolutions",
		Long: `List every configured feature with its resolution. Extra feature
identifiers given as arguments are resolved as well.`,
	}
}

// Execute lists the feature resolutions.
func (it *FeaturesController) Execute(cmd *cobra.Command, args []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	applyRuntimeFlags(cmd, settings, nil)

	statuses, listErr := it.command.Execute(context.Background(), settings, commands.FeaturesOptions{
		Check: args,
	})
	if listErr != nil {
		logger.Errorf("failed to list features: %v", listErr)
		return
	}

	if len(statuses) == 0 {
		fmt.Println("no features configured")
		return
	}

	for _, status := range statuses {
		fmt.Printf("%-30s %-8s (%s)\n", status.ID, activeLabel(status.Active), status.State)
	}
}

func activeLabel(active bool) string {
	if active {
		return "on"
	}
	return "off"
}
