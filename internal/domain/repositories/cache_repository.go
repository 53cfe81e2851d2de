package repositories

import (
	"context"

	"github.com/rios0rios0/hubward/internal/domain/entities"
)

// ComputeFunc produces a fresh value when the cache policy allows computing.
type ComputeFunc func(ctx context.Context) (*entities.RepositoryRecord, error)

// CacheRepository is the fetch-or-compute content cache. A nil compute
// function degrades the call to a pure cache read. An absent value is a
// (nil, nil) result, never an error.
type CacheRepository interface {
	// Configure applies the staleness classes and storage location.
	Configure(settings *entities.Settings)

	Get(
		ctx context.Context,
		key entities.CacheKey,
		compute ComputeFunc,
		policy entities.CachePolicy,
	) (*entities.RepositoryRecord, error)
}
