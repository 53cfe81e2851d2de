// Package probedebug wraps the network-facing probe client with debug
// logging and a dry-run mode. The wrapping is an explicit decorator the
// container composes; nothing is patched globally.
package probedebug

import (
	"context"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hubward/internal/domain/entities"
	"github.com/rios0rios0/hubward/internal/domain/repositories"
	ghRepo "github.com/rios0rios0/hubward/internal/infrastructure/repositories/github"
)

// ProbeRepository decorates a ProbeRepository. In dry-run mode the
// network-facing calls are replaced with no-op stand-ins; helper-command
// execution elsewhere is unaffected.
type ProbeRepository struct {
	inner repositories.ProbeRepository
	debug *entities.DebugState
}

// NewProbeRepository wraps the GitHub probe client.
func NewProbeRepository(
	inner *ghRepo.ProbeRepository,
	debug *entities.DebugState,
) repositories.ProbeRepository {
	return &ProbeRepository{inner: inner, debug: debug}
}

func (p *ProbeRepository) FetchServiceMetadata(ctx context.Context) error {
	if p.debug.DryRun() {
		logger.Debugf("probe: dry-run, skipping availability probe")
		return nil
	}

	start := time.Now()
	err := p.inner.FetchServiceMetadata(ctx)
	if p.debug.Enabled() {
		logger.Debugf("probe: service metadata in %s (err=%v)", time.Since(start), err)
	}
	return err
}

func (p *ProbeRepository) FetchRepository(
	ctx context.Context,
	id entities.RepositoryIdentity,
) (*entities.RepositoryRecord, error) {
	if p.debug.DryRun() {
		logger.Debugf("probe: dry-run, skipping repository fetch for %s", id.Slug())
		return nil, nil
	}

	start := time.Now()
	record, err := p.inner.FetchRepository(ctx, id)
	if p.debug.Enabled() {
		logger.Debugf("probe: repository %s in %s (found=%t err=%v)",
			id.Slug(), time.Since(start), record != nil, err)
	}
	return record, err
}
