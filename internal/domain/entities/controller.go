package entities

import "github.com/spf13/cobra"

// Controller binds a domain command to a CLI subcommand.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string)
}

// ControllerBind carries the Cobra metadata for a controller.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}
