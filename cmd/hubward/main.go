package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/hubward/internal"
	"github.com/rios0rios0/hubward/internal/infrastructure/controllers"
)

func buildRootCommand(resolveController *controllers.ResolveController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "hubward [path]",
		Short: "GitHub-aware decision core for local working copies",
		Long: `Resolves local working copies into their GitHub repositories while
staying responsive when the network is not: throttled availability
probing, an explicit offline mode, a staleness-aware disk cache, and
checked pass-through to the external helper binary.

Usage modes:
  hubward .                 Resolve the current working copy
  hubward /path/to/repo     Resolve a specific working copy
  hubward status .          Show mode, identity, and availability`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if len(args) == 0 {
				return command.Help()
			}
			resolveController.Execute(command, args)
			return nil
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().StringP("remote", "r", "",
		"Remote alias to resolve (default: configured or origin)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Suppress all network calls, pretending they returned nothing")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if hc, ok := ctrl.(*controllers.HelperController); ok {
			hc.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	resolveController := injectResolveController()
	cobraRoot := buildRootCommand(resolveController)

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'hubward': %s", err)
	}
}
