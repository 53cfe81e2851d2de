//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/hubward/internal/domain/commands"
	"github.com/rios0rios0/hubward/internal/domain/entities"
	"github.com/rios0rios0/hubward/internal/domain/services"
	doubles "github.com/rios0rios0/hubward/test/infrastructure/repositorydoubles"
)

type refreshFixture struct {
	probe   *doubles.SpyProbeRepository
	cache   *doubles.SpyCacheRepository
	hostcfg *doubles.StubHostConfigRepository
	offline *entities.OfflineState
	cmd     *commands.RefreshCommand
}

func newRefreshFixture(t *testing.T) *refreshFixture {
	t.Helper()

	probe := &doubles.SpyProbeRepository{}
	cache := &doubles.SpyCacheRepository{}
	hostcfg := &doubles.StubHostConfigRepository{
		Remotes: map[string]string{"origin": "git@github.com:octocat/hello-world.git"},
		Values:  map[string]string{},
	}
	offline := entities.NewOfflineState()
	gate := services.NewAvailabilityGate(probe, offline)

	return &refreshFixture{
		probe:   probe,
		cache:   cache,
		hostcfg: hostcfg,
		offline: offline,
		cmd:     commands.NewRefreshCommand(gate, offline, cache, hostcfg, probe),
	}
}

func TestRefreshCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should fetch through the cache and replay cache-only", func(t *testing.T) {
		// given
		fixture := newRefreshFixture(t)
		fixture.probe.Record = testRecord(t)

		// when
		record, err := fixture.cmd.Execute(
			context.Background(), entities.DefaultSettings(), commands.RefreshOptions{Dir: "."})

		// then
		require.NoError(t, err)
		require.NotNil(t, record)
		require.Len(t, fixture.cache.GetCalls, 2)
		assert.Equal(t, entities.CachePolicyBypass, fixture.cache.GetCalls[0].Policy)
		assert.True(t, fixture.cache.GetCalls[0].HadCompute)
		assert.Equal(t, entities.CachePolicyCacheOnly, fixture.cache.GetCalls[1].Policy)
		assert.False(t, fixture.cache.GetCalls[1].HadCompute)
	})

	t.Run("should restore the prior mode after the replay", func(t *testing.T) {
		// given
		fixture := newRefreshFixture(t)
		fixture.probe.Record = testRecord(t)

		// when
		_, err := fixture.cmd.Execute(
			context.Background(), entities.DefaultSettings(), commands.RefreshOptions{Dir: "."})

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.OfflineModeDefault, fixture.offline.Mode())
	})

	t.Run("should skip the fetch while offline and serve the cache", func(t *testing.T) {
		// given
		fixture := newRefreshFixture(t)
		fixture.hostcfg.Values["offline"] = "true"
		fixture.cache.Cached = testRecord(t)

		// when
		record, err := fixture.cmd.Execute(
			context.Background(), entities.DefaultSettings(), commands.RefreshOptions{Dir: "."})

		// then
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Zero(t, fixture.probe.ProbeCalls)
		assert.Empty(t, fixture.probe.FetchCalls)
		require.Len(t, fixture.cache.GetCalls, 1)
		assert.Equal(t, entities.CachePolicyCacheOnly, fixture.cache.GetCalls[0].Policy)
		assert.Equal(t, entities.OfflineModeForced, fixture.offline.Mode())
	})

	t.Run("should serve the stale record when the fetch fails", func(t *testing.T) {
		// given
		fixture := newRefreshFixture(t)
		fixture.cache.Cached = testRecord(t)
		fixture.probe.FetchErr = assert.AnError

		// when
		record, err := fixture.cmd.Execute(
			context.Background(), entities.DefaultSettings(), commands.RefreshOptions{Dir: "."})

		// then
		require.NoError(t, err)
		require.NotNil(t, record)
	})

	t.Run("should do nothing for a non-GitHub working copy", func(t *testing.T) {
		// given
		fixture := newRefreshFixture(t)
		fixture.hostcfg.Remotes["origin"] = "not a url"

		// when
		record, err := fixture.cmd.Execute(
			context.Background(), entities.DefaultSettings(), commands.RefreshOptions{Dir: "."})

		// then
		require.NoError(t, err)
		assert.Nil(t, record)
		assert.Empty(t, fixture.cache.GetCalls)
	})
}
