package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/hubward/internal/domain/commands"
	"github.com/rios0rios0/hubward/internal/domain/entities"
)

// ResolveController handles the root command with a path argument: resolve
// the working copy into its canonical GitHub repository.
type ResolveController struct {
	command commands.Resolve
	debug   *entities.DebugState
}

// NewResolveController creates a new ResolveController.
func NewResolveController(command commands.Resolve, debug *entities.DebugState) *ResolveController {
	return &ResolveController{command: command, debug: debug}
}

// GetBind returns the Cobra command metadata for the resolve controller.
func (it *ResolveController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "resolve [path]",
		Short: "Resolve a working copy into its GitHub repository",
		Long: `Resolve a local working copy into its canonical GitHub repository.
Parses the configured remote, checks API availability (honoring offline
mode), and returns the repository record from the API or the cache.`,
	}
}

// Execute runs the resolution.
func (it *ResolveController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	applyRuntimeFlags(cmd, settings, it.debug)

	remote, _ := cmd.Flags().GetString("remote")

	record, resolveErr := it.command.Execute(ctx, settings, commands.ResolveOptions{
		Dir:     workingDir(args),
		Remote:  remote,
		Confirm: confirmGoOffline,
	})
	if resolveErr != nil {
		logger.Errorf("resolve failed: %v", resolveErr)
		return
	}

	if record == nil {
		fmt.Println("not a usable GitHub repository")
		return
	}

	fmt.Printf("%s (%s)\n", record.FullName, record.Identity.Domain)
	if record.Description != "" {
		fmt.Printf("  %s\n", record.Description)
	}
	if record.DefaultBranch != "" {
		fmt.Printf("  default branch: %s\n", record.DefaultBranch)
	}
	fmt.Printf("  fetched: %s\n", record.FetchedAt.Format("2006-01-02 15:04:05 MST"))
}
