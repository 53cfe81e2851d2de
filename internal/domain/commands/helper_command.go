package commands

import (
	"context"

	"github.com/rios0rios0/hubward/internal/domain/entities"
	"github.com/rios0rios0/hubward/internal/domain/services"
)

// Helper is the interface for pass-through helper invocations.
type Helper interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		opts HelperOptions,
	) (*entities.HelperOutput, error)
}

// HelperOptions holds one helper invocation request.
type HelperOptions struct {
	Args []string
	Mode entities.RunMode
	Raw  bool
}

// HelperCommand runs the external helper after the precondition and
// version checks.
type HelperCommand struct {
	runner *services.CommandRunner
}

// NewHelperCommand creates a new HelperCommand.
func NewHelperCommand(runner *services.CommandRunner) *HelperCommand {
	return &HelperCommand{runner: runner}
}

// Execute runs one helper invocation.
func (it *HelperCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts HelperOptions,
) (*entities.HelperOutput, error) {
	it.runner.Configure(settings)

	if err := it.runner.CheckVersion(ctx); err != nil {
		return nil, err
	}

	return it.runner.Run(ctx, entities.HelperInvocation{
		Args: opts.Args,
		Mode: opts.Mode,
		Raw:  opts.Raw,
	})
}
