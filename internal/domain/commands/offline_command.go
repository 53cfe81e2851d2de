package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rios0rios0/hubward/internal/domain/entities"
	"github.com/rios0rios0/hubward/internal/domain/repositories"
)

// OfflineAction selects which mode transition to apply.
type OfflineAction int

const (
	ActionGoOffline OfflineAction = iota
	ActionGoOnline
	ActionToggle
)

// Offline is the interface for the offline-mode toggle operations.
type Offline interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		opts OfflineOptions,
	) (entities.OfflineMode, error)
}

// OfflineOptions holds runtime options for one mode transition.
type OfflineOptions struct {
	Dir    string
	Action OfflineAction
}

// OfflineCommand applies a mode transition and persists the result in the
// working copy configuration so it survives across invocations.
type OfflineCommand struct {
	offline *entities.OfflineState
	hostcfg repositories.HostConfigRepository
}

// NewOfflineCommand creates a new OfflineCommand.
func NewOfflineCommand(
	offline *entities.OfflineState,
	hostcfg repositories.HostConfigRepository,
) *OfflineCommand {
	return &OfflineCommand{offline: offline, hostcfg: hostcfg}
}

// Execute applies the requested transition and returns the resulting mode.
func (it *OfflineCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts OfflineOptions,
) (entities.OfflineMode, error) {
	seedOfflineMode(it.offline, it.hostcfg, opts.Dir)

	switch opts.Action {
	case ActionGoOffline:
		it.offline.GoOffline()
	case ActionGoOnline:
		it.offline.GoOnline()
	case ActionToggle:
		it.offline.Toggle()
	}

	mode := it.offline.Mode()
	persisted := strconv.FormatBool(mode.Offline())
	if err := it.hostcfg.Set(opts.Dir, hostKeyOffline, persisted); err != nil {
		return mode, fmt.Errorf("failed to persist offline mode: %w", err)
	}
	return mode, nil
}
