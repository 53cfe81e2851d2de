package commands

import (
	"context"

	"github.com/rios0rios0/hubward/internal/domain/entities"
	"github.com/rios0rios0/hubward/internal/domain/repositories"
	"github.com/rios0rios0/hubward/internal/domain/services"
)

// Status is the interface for the status report of a working copy.
type Status interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		opts StatusOptions,
	) (*StatusReport, error)
}

// StatusOptions holds runtime options for one status call.
type StatusOptions struct {
	Dir     string
	Remote  string
	Confirm services.ConfirmFunc
}

// StatusReport summarizes the gate decisions for a working copy.
type StatusReport struct {
	Enabled   bool
	Identity  *entities.RepositoryIdentity
	Mode      entities.OfflineMode
	Available bool
	HelperOK  bool
	HelperErr error
}

// StatusCommand collects the offline mode, the parsed remote identity, the
// availability answer, and the helper preconditions into one report.
type StatusCommand struct {
	gate    *services.AvailabilityGate
	runner  *services.CommandRunner
	offline *entities.OfflineState
	hostcfg repositories.HostConfigRepository
}

// NewStatusCommand creates a new StatusCommand.
func NewStatusCommand(
	gate *services.AvailabilityGate,
	runner *services.CommandRunner,
	offline *entities.OfflineState,
	hostcfg repositories.HostConfigRepository,
) *StatusCommand {
	return &StatusCommand{
		gate:    gate,
		runner:  runner,
		offline: offline,
		hostcfg: hostcfg,
	}
}

// Execute builds the status report for the working copy at opts.Dir.
func (it *StatusCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts StatusOptions,
) (*StatusReport, error) {
	it.gate.Configure(settings)
	it.runner.Configure(settings)
	if opts.Confirm != nil {
		it.gate.SetConfirm(opts.Confirm)
	}

	report := &StatusReport{
		Enabled: integrationEnabled(it.hostcfg, opts.Dir),
	}
	if !report.Enabled {
		return report, nil
	}

	seedOfflineMode(it.offline, it.hostcfg, opts.Dir)
	report.Mode = it.offline.Mode()

	identity, ok, err := resolveIdentity(settings, it.hostcfg, opts.Dir, opts.Remote)
	if err != nil {
		return nil, err
	}
	if ok {
		report.Identity = &identity
	}

	report.Available = it.gate.IsAvailable(ctx, false)

	if helperErr := it.runner.CheckVersion(ctx); helperErr != nil {
		report.HelperErr = helperErr
	} else {
		report.HelperOK = true
	}

	return report, nil
}
