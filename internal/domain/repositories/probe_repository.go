package repositories

import (
	"context"

	"github.com/rios0rios0/hubward/internal/domain/entities"
)

// ProbeRepository is the network client of the core. FetchServiceMetadata is
// the lightweight reachability probe; FetchRepository is the single
// domain-data call the resolver hands to the cache as its compute step.
type ProbeRepository interface {
	// FetchServiceMetadata performs the availability probe. It fetches no
	// domain data; only the error result matters.
	FetchServiceMetadata(ctx context.Context) error

	// FetchRepository returns the authoritative repository record, or
	// (nil, nil) when the remote reports the repository does not exist.
	FetchRepository(ctx context.Context, id entities.RepositoryIdentity) (*entities.RepositoryRecord, error)
}
