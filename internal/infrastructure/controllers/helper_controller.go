package controllers

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/hubward/internal/domain/commands"
	"github.com/rios0rios0/hubward/internal/domain/entities"
	"github.com/rios0rios0/hubward/internal/domain/services"
)

// HelperController handles the "helper" subcommand: a checked pass-through
// to the external helper binary.
type HelperController struct {
	command commands.Helper
	debug   *entities.DebugState
}

// NewHelperController creates a new HelperController.
func NewHelperController(command commands.Helper, debug *entities.DebugState) *HelperController {
	return &HelperController{command: command, debug: debug}
}

// GetBind returns the Cobra command metadata for the helper controller.
func (it *HelperController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "helper [args...]",
		Short: "Run the external helper with precondition checks",
		Long: `Run the configured external helper binary with the given arguments,
after checking that it is installed, initialized, and recent enough.
Output is captured line by line unless --raw is set.`,
	}
}

// AddFlags registers the helper-specific flags.
func (it *HelperController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("editor", false, "run interactively with the terminal attached")
	cmd.Flags().Bool("raw", false, "return output as a single blob instead of lines")
}

// Execute runs one helper invocation.
func (it *HelperController) Execute(cmd *cobra.Command, args []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	applyRuntimeFlags(cmd, settings, it.debug)

	editor, _ := cmd.Flags().GetBool("editor")
	raw, _ := cmd.Flags().GetBool("raw")

	mode := entities.RunCapture
	if editor {
		mode = entities.RunSyncEditor
	}

	output, runErr := it.command.Execute(context.Background(), settings, commands.HelperOptions{
		Args: args,
		Mode: mode,
		Raw:  raw,
	})
	if runErr != nil {
		logger.Errorf("helper failed: %v", explainHelperError(runErr))
		return
	}

	if output == nil {
		return
	}
	if raw {
		fmt.Print(output.Raw)
		return
	}
	for _, line := range output.Lines {
		fmt.Println(line)
	}
}

// explainHelperError turns the precondition sentinels into actionable text.
func explainHelperError(err error) error {
	switch {
	case errors.Is(err, services.ErrHelperNotInstalled):
		return fmt.Errorf("%w (install it and make sure it is on PATH)", err)
	case errors.Is(err, services.ErrHelperNotInitialized):
		return fmt.Errorf("%w (run it once by hand to create its config)", err)
	default:
		return err
	}
}
