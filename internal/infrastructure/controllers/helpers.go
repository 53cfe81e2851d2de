package controllers

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/hubward/internal/domain/entities"
)

// loadSettings resolves the configuration file from the --config flag or
// the standard locations. No file at all is fine; defaults apply.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		found, err := entities.FindSettingsFile()
		if err != nil {
			logger.Debugf("no config file found, using defaults")
			return entities.DefaultSettings(), nil
		}
		path = found
	}

	logger.Debugf("using config file: %s", path)
	return entities.NewSettings(path)
}

// applyRuntimeFlags seeds the log level and the debug state from the
// persistent flags and the loaded settings.
func applyRuntimeFlags(cmd *cobra.Command, settings *entities.Settings, debug *entities.DebugState) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose || settings.Debug.Enabled {
		logger.SetLevel(logger.DebugLevel)
	}

	if debug == nil {
		return
	}
	debug.SetEnabled(verbose || settings.Debug.Enabled)

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	debug.SetDryRun(dryRun || settings.Debug.DryRun)
}

// workingDir returns the target working copy: the first positional
// argument or the current directory.
func workingDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// confirmGoOffline asks on the terminal whether to switch to offline mode
// after a failed probe. Any read problem counts as a decline.
func confirmGoOffline(reason string) bool {
	fmt.Fprintf(os.Stderr, "GitHub is unreachable: %s\nSwitch to offline mode? [y/N] ", reason)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y")
}
