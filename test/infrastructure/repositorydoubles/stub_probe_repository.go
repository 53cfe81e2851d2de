//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/hubward/internal/domain/entities"
	"github.com/rios0rios0/hubward/internal/domain/repositories"
)

// SpyProbeRepository implements repositories.ProbeRepository as a
// configurable spy.
type SpyProbeRepository struct {
	// --- FetchServiceMetadata ---
	ProbeErr   error
	ProbeCalls int

	// --- FetchRepository ---
	Record     *entities.RepositoryRecord
	FetchErr   error
	FetchCalls []entities.RepositoryIdentity
}

var _ repositories.ProbeRepository = (*SpyProbeRepository)(nil)

func (it *SpyProbeRepository) FetchServiceMetadata(_ context.Context) error {
	it.ProbeCalls++
	return it.ProbeErr
}

func (it *SpyProbeRepository) FetchRepository(
	_ context.Context, id entities.RepositoryIdentity,
) (*entities.RepositoryRecord, error) {
	it.FetchCalls = append(it.FetchCalls, id)
	return it.Record, it.FetchErr
}

// BlockingProbeRepository never answers the probe until the context gives
// up, simulating an unreachable API endpoint.
type BlockingProbeRepository struct {
	ProbeCalls int
}

var _ repositories.ProbeRepository = (*BlockingProbeRepository)(nil)

func (it *BlockingProbeRepository) FetchServiceMetadata(ctx context.Context) error {
	it.ProbeCalls++
	<-ctx.Done()
	return ctx.Err()
}

func (it *BlockingProbeRepository) FetchRepository(
	ctx context.Context, _ entities.RepositoryIdentity,
) (*entities.RepositoryRecord, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
