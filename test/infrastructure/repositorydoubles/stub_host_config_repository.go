//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/hubward/internal/domain/repositories"
)

// StubHostConfigRepository implements repositories.HostConfigRepository over
// in-memory maps. Sets are recorded in place, so tests can assert on what
// was persisted.
type StubHostConfigRepository struct {
	// Remotes maps a remote alias to its fetch URL.
	Remotes map[string]string
	// Values maps a config key to its value.
	Values map[string]string

	RemoteErr error
	SetErr    error
}

var _ repositories.HostConfigRepository = (*StubHostConfigRepository)(nil)

func (it *StubHostConfigRepository) RemoteURL(_, alias string) (string, error) {
	if it.RemoteErr != nil {
		return "", it.RemoteErr
	}
	return it.Remotes[alias], nil
}

func (it *StubHostConfigRepository) Get(_, key string) (string, bool) {
	value, ok := it.Values[key]
	return value, ok
}

func (it *StubHostConfigRepository) Set(_, key, value string) error {
	if it.SetErr != nil {
		return it.SetErr
	}
	if it.Values == nil {
		it.Values = map[string]string{}
	}
	it.Values[key] = value
	return nil
}
