package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hubward/internal/domain/entities"
	"github.com/rios0rios0/hubward/internal/domain/repositories"
	"github.com/rios0rios0/hubward/internal/domain/services"
)

// Refresh is the interface for the explicit "refresh everything" operation.
type Refresh interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		opts RefreshOptions,
	) (*entities.RepositoryRecord, error)
}

// RefreshOptions holds runtime options for one refresh.
type RefreshOptions struct {
	Dir    string
	Remote string
}

// RefreshCommand re-fetches the authoritative record, writing it through the
// cache, and then replays the resolution under the hard-refresh override so
// every other lookup in the operation is served from the cache regardless
// of staleness. The prior mode is restored on every exit path.
type RefreshCommand struct {
	gate    *services.AvailabilityGate
	offline *entities.OfflineState
	cache   repositories.CacheRepository
	hostcfg repositories.HostConfigRepository
	probe   repositories.ProbeRepository
}

// NewRefreshCommand creates a new RefreshCommand.
func NewRefreshCommand(
	gate *services.AvailabilityGate,
	offline *entities.OfflineState,
	cache repositories.CacheRepository,
	hostcfg repositories.HostConfigRepository,
	probe repositories.ProbeRepository,
) *RefreshCommand {
	return &RefreshCommand{
		gate:    gate,
		offline: offline,
		cache:   cache,
		hostcfg: hostcfg,
		probe:   probe,
	}
}

// Execute refreshes the repository record for the working copy at opts.Dir.
func (it *RefreshCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts RefreshOptions,
) (*entities.RepositoryRecord, error) {
	it.gate.Configure(settings)
	it.cache.Configure(settings)

	if !integrationEnabled(it.hostcfg, opts.Dir) {
		return nil, nil
	}

	seedOfflineMode(it.offline, it.hostcfg, opts.Dir)

	identity, ok, err := resolveIdentity(settings, it.hostcfg, opts.Dir, opts.Remote)
	if err != nil || !ok {
		return nil, err
	}

	key := entities.CacheKey{Identity: identity, Class: entities.CacheClassRepository}

	if !it.offline.IsOffline() && it.gate.IsAvailable(ctx, false) {
		compute := func(computeCtx context.Context) (*entities.RepositoryRecord, error) {
			return it.probe.FetchRepository(computeCtx, identity)
		}
		if _, fetchErr := it.cache.Get(ctx, key, compute, entities.CachePolicyBypass); fetchErr != nil {
			logger.Debugf("refresh fetch failed, serving cache: %v", fetchErr)
		}
	}

	// Everything after the single fetch runs under the hard-refresh
	// override: cache reads only, staleness ignored.
	var record *entities.RepositoryRecord
	err = it.offline.WithHardRefresh(func() error {
		var getErr error
		mode := it.offline.Mode()
		record, getErr = it.cache.Get(ctx, key, nil, mode.CachePolicy())
		return getErr
	})
	return record, err
}
