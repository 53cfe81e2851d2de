package commands

import (
	"context"

	"github.com/rios0rios0/hubward/internal/domain/entities"
	"github.com/rios0rios0/hubward/internal/domain/repositories"
	"github.com/rios0rios0/hubward/internal/domain/services"
)

// Resolve is the interface for resolving a working copy into a GitHub-backed
// repository context.
type Resolve interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		opts ResolveOptions,
	) (*entities.RepositoryRecord, error)
}

// ResolveOptions holds runtime options for a single resolution.
type ResolveOptions struct {
	Dir     string
	Remote  string // remote alias override (CLI flag)
	Confirm services.ConfirmFunc
}

// ResolveCommand answers "is this working copy usable as a GitHub-backed
// repository, and what is its canonical identity?". A nil record with a nil
// error means the working copy is unusable; callers treat that as ordinary
// control flow.
type ResolveCommand struct {
	gate    *services.AvailabilityGate
	offline *entities.OfflineState
	cache   repositories.CacheRepository
	hostcfg repositories.HostConfigRepository
	probe   repositories.ProbeRepository
}

// NewResolveCommand creates a new ResolveCommand.
func NewResolveCommand(
	gate *services.AvailabilityGate,
	offline *entities.OfflineState,
	cache repositories.CacheRepository,
	hostcfg repositories.HostConfigRepository,
	probe repositories.ProbeRepository,
) *ResolveCommand {
	return &ResolveCommand{
		gate:    gate,
		offline: offline,
		cache:   cache,
		hostcfg: hostcfg,
		probe:   probe,
	}
}

// Execute resolves the working copy at opts.Dir.
func (it *ResolveCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ResolveOptions,
) (*entities.RepositoryRecord, error) {
	it.gate.Configure(settings)
	it.cache.Configure(settings)
	if opts.Confirm != nil {
		it.gate.SetConfirm(opts.Confirm)
	}

	if !integrationEnabled(it.hostcfg, opts.Dir) {
		return nil, nil
	}

	seedOfflineMode(it.offline, it.hostcfg, opts.Dir)

	identity, ok, err := resolveIdentity(settings, it.hostcfg, opts.Dir, opts.Remote)
	if err != nil || !ok {
		return nil, err
	}

	key := entities.CacheKey{Identity: identity, Class: entities.CacheClassRepository}
	mode := it.offline.Mode()

	if mode.Offline() {
		return it.cache.Get(ctx, key, nil, mode.CachePolicy())
	}

	if !it.gate.IsAvailable(ctx, false) {
		// Transient unavailability degrades to the cache.
		return it.cache.Get(ctx, key, nil, entities.CachePolicyCacheOnly)
	}

	compute := func(computeCtx context.Context) (*entities.RepositoryRecord, error) {
		return it.probe.FetchRepository(computeCtx, identity)
	}
	return it.cache.Get(ctx, key, compute, mode.CachePolicy())
}
