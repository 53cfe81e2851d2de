//go:build unit

package entities_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/hubward/internal/domain/entities"
)

func TestOfflineModeCachePolicy(t *testing.T) {
	t.Parallel()

	t.Run("should map each mode to its cache policy", func(t *testing.T) {
		// given / when / then
		assert.Equal(t, entities.CachePolicyDefault, entities.OfflineModeDefault.CachePolicy())
		assert.Equal(t, entities.CachePolicyBypass, entities.OfflineModeDisabled.CachePolicy())
		assert.Equal(t, entities.CachePolicyCacheOnly, entities.OfflineModeForced.CachePolicy())
		assert.Equal(t, entities.CachePolicyCacheOnly, entities.OfflineModeHardRefresh.CachePolicy())
	})

	t.Run("should report offline only for the forced variants", func(t *testing.T) {
		// given / when / then
		assert.False(t, entities.OfflineModeDefault.Offline())
		assert.False(t, entities.OfflineModeDisabled.Offline())
		assert.True(t, entities.OfflineModeForced.Offline())
		assert.True(t, entities.OfflineModeHardRefresh.Offline())
	})
}

func TestOfflineStateTransitions(t *testing.T) {
	t.Parallel()

	t.Run("should be idempotent for GoOffline and GoOnline", func(t *testing.T) {
		// given
		state := entities.NewOfflineState()

		// when
		state.GoOffline()
		state.GoOffline()

		// then
		assert.Equal(t, entities.OfflineModeForced, state.Mode())

		// when
		state.GoOnline()
		state.GoOnline()

		// then
		assert.Equal(t, entities.OfflineModeDefault, state.Mode())
	})

	t.Run("should toggle between online and forced offline", func(t *testing.T) {
		// given
		state := entities.NewOfflineState()

		// when / then
		assert.True(t, state.Toggle())
		assert.Equal(t, entities.OfflineModeForced, state.Mode())
		assert.False(t, state.Toggle())
		assert.Equal(t, entities.OfflineModeDefault, state.Mode())
	})

	t.Run("should return to default from cache-disabled when going online", func(t *testing.T) {
		// given
		state := entities.NewOfflineState()
		state.SetMode(entities.OfflineModeDisabled)

		// when
		state.GoOnline()

		// then: not offline, so GoOnline leaves the mode alone
		assert.Equal(t, entities.OfflineModeDisabled, state.Mode())
	})
}

func TestOfflineStateWithHardRefresh(t *testing.T) {
	t.Parallel()

	t.Run("should expose hard refresh inside and restore after", func(t *testing.T) {
		// given
		state := entities.NewOfflineState()
		state.SetMode(entities.OfflineModeDisabled)

		// when
		var inside entities.OfflineMode
		err := state.WithHardRefresh(func() error {
			inside = state.Mode()
			return nil
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.OfflineModeHardRefresh, inside)
		assert.Equal(t, entities.OfflineModeDisabled, state.Mode())
	})

	t.Run("should restore the prior mode when fn fails", func(t *testing.T) {
		// given
		state := entities.NewOfflineState()
		boom := errors.New("boom")

		// when
		err := state.WithHardRefresh(func() error { return boom })

		// then
		require.ErrorIs(t, err, boom)
		assert.Equal(t, entities.OfflineModeDefault, state.Mode())
	})

	t.Run("should restore the prior mode across a panic", func(t *testing.T) {
		// given
		state := entities.NewOfflineState()
		state.GoOffline()

		// when
		assert.Panics(t, func() {
			_ = state.WithHardRefresh(func() error { panic("boom") })
		})

		// then
		assert.Equal(t, entities.OfflineModeForced, state.Mode())
	})
}
