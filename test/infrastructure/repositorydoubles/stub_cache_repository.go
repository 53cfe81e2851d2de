//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/hubward/internal/domain/entities"
	"github.com/rios0rios0/hubward/internal/domain/repositories"
)

// GetCall records a single invocation of Get.
type GetCall struct {
	Key        entities.CacheKey
	Policy     entities.CachePolicy
	HadCompute bool
}

// SpyCacheRepository implements repositories.CacheRepository as a
// configurable spy. When Cached is set it is served for read-style calls;
// compute functions are invoked exactly as the policy table dictates.
type SpyCacheRepository struct {
	Cached   *entities.RepositoryRecord
	GetCalls []GetCall
}

var _ repositories.CacheRepository = (*SpyCacheRepository)(nil)

func (it *SpyCacheRepository) Configure(_ *entities.Settings) {}

func (it *SpyCacheRepository) Get(
	ctx context.Context,
	key entities.CacheKey,
	compute repositories.ComputeFunc,
	policy entities.CachePolicy,
) (*entities.RepositoryRecord, error) {
	it.GetCalls = append(it.GetCalls, GetCall{Key: key, Policy: policy, HadCompute: compute != nil})

	if compute == nil || policy == entities.CachePolicyCacheOnly {
		return it.Cached, nil
	}

	record, err := compute(ctx)
	if err != nil {
		if it.Cached != nil {
			return it.Cached, nil
		}
		return nil, err
	}
	if record != nil {
		it.Cached = record
	}
	return record, nil
}
