package github

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v66/github"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/rios0rios0/hubward/internal/domain/entities"
	"github.com/rios0rios0/hubward/internal/domain/repositories"
)

const retryMax = 2

// ProbeRepository implements repositories.ProbeRepository against the
// GitHub API over a retrying HTTP client.
type ProbeRepository struct {
	client *gh.Client
}

// NewProbeRepository creates a probe client. Without a token the API is
// used unauthenticated.
func NewProbeRepository(tokens repositories.TokenRepository) *ProbeRepository {
	retry := retryablehttp.NewClient()
	retry.RetryMax = retryMax
	retry.Logger = nil

	client := gh.NewClient(retry.StandardClient())
	if token := tokens.Token(); token != "" {
		client = client.WithAuthToken(token)
	}
	return &ProbeRepository{client: client}
}

// FetchServiceMetadata fetches the API meta document. The payload is
// discarded; only reachability matters.
func (p *ProbeRepository) FetchServiceMetadata(ctx context.Context) error {
	_, _, err := p.client.Meta.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch service metadata: %w", err)
	}
	return nil
}

// FetchRepository returns the authoritative repository record. A remote
// "not found" is (nil, nil): the working copy simply has no repository.
func (p *ProbeRepository) FetchRepository(
	ctx context.Context,
	id entities.RepositoryIdentity,
) (*entities.RepositoryRecord, error) {
	repo, resp, err := p.client.Repositories.Get(ctx, id.Owner, id.Name)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch repository %s: %w", id.Slug(), err)
	}

	return &entities.RepositoryRecord{
		Identity:      id,
		FullName:      repo.GetFullName(),
		Description:   repo.GetDescription(),
		DefaultBranch: repo.GetDefaultBranch(),
		Private:       repo.GetPrivate(),
		FetchedAt:     time.Now().UTC(),
	}, nil
}
