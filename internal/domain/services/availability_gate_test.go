//go:build unit

package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/hubward/internal/domain/entities"
	"github.com/rios0rios0/hubward/internal/domain/services"
	doubles "github.com/rios0rios0/hubward/test/infrastructure/repositorydoubles"
)

func TestAvailabilityGateIsAvailable(t *testing.T) {
	t.Parallel()

	t.Run("should probe at most once inside the throttle window", func(t *testing.T) {
		// given
		spy := &doubles.SpyProbeRepository{}
		gate := services.NewAvailabilityGate(spy, entities.NewOfflineState())

		// when
		first := gate.IsAvailable(context.Background(), false)
		second := gate.IsAvailable(context.Background(), false)
		third := gate.IsAvailable(context.Background(), false)

		// then
		assert.True(t, first)
		assert.True(t, second)
		assert.True(t, third)
		assert.Equal(t, 1, spy.ProbeCalls)
	})

	t.Run("should probe again once the window has elapsed", func(t *testing.T) {
		// given
		spy := &doubles.SpyProbeRepository{}
		gate := services.NewAvailabilityGate(spy, entities.NewOfflineState())

		now := time.Now()
		services.SetGateClock(gate, func() time.Time { return now })

		// when
		require.True(t, gate.IsAvailable(context.Background(), false))
		now = now.Add(11 * time.Second)
		require.True(t, gate.IsAvailable(context.Background(), false))

		// then
		assert.Equal(t, 2, spy.ProbeCalls)
	})

	t.Run("should short-circuit without probing while offline", func(t *testing.T) {
		// given
		spy := &doubles.SpyProbeRepository{}
		offline := entities.NewOfflineState()
		offline.GoOffline()
		gate := services.NewAvailabilityGate(spy, offline)

		// when
		available := gate.IsAvailable(context.Background(), false)

		// then
		assert.False(t, available)
		assert.Zero(t, spy.ProbeCalls)
	})

	t.Run("should probe despite offline mode when told to ignore it", func(t *testing.T) {
		// given
		spy := &doubles.SpyProbeRepository{}
		offline := entities.NewOfflineState()
		offline.GoOffline()
		gate := services.NewAvailabilityGate(spy, offline)

		// when
		available := gate.IsAvailable(context.Background(), true)

		// then
		assert.True(t, available)
		assert.Equal(t, 1, spy.ProbeCalls)
	})

	t.Run("should not record a success for a failed probe", func(t *testing.T) {
		// given
		spy := &doubles.SpyProbeRepository{ProbeErr: errors.New("dial refused")}
		gate := services.NewAvailabilityGate(spy, entities.NewOfflineState())

		// when
		available := gate.IsAvailable(context.Background(), false)

		// then
		assert.False(t, available)
		assert.True(t, gate.LastSuccess().IsZero())
	})

	t.Run("should switch to offline mode when the user accepts", func(t *testing.T) {
		// given
		spy := &doubles.SpyProbeRepository{ProbeErr: errors.New("dial refused")}
		offline := entities.NewOfflineState()
		gate := services.NewAvailabilityGate(spy, offline)

		var reason string
		gate.SetConfirm(func(r string) bool {
			reason = r
			return true
		})

		// when
		available := gate.IsAvailable(context.Background(), false)

		// then
		assert.False(t, available)
		assert.True(t, offline.IsOffline())
		assert.Equal(t, "dial refused", reason)
	})

	t.Run("should leave the mode unchanged when the user declines", func(t *testing.T) {
		// given
		spy := &doubles.SpyProbeRepository{ProbeErr: errors.New("dial refused")}
		offline := entities.NewOfflineState()
		gate := services.NewAvailabilityGate(spy, offline)
		gate.SetConfirm(func(string) bool { return false })

		// when
		available := gate.IsAvailable(context.Background(), false)

		// then
		assert.False(t, available)
		assert.False(t, offline.IsOffline())
	})

	t.Run("should classify a hanging probe as a timeout", func(t *testing.T) {
		// given
		blocking := &doubles.BlockingProbeRepository{}
		gate := services.NewAvailabilityGate(blocking, entities.NewOfflineState())
		services.SetGateTimeout(gate, 20*time.Millisecond)

		var reason string
		gate.SetConfirm(func(r string) bool {
			reason = r
			return false
		})

		// when
		available := gate.IsAvailable(context.Background(), false)

		// then
		assert.False(t, available)
		assert.Equal(t, 1, blocking.ProbeCalls)
		assert.Contains(t, reason, "timeout")
	})

	t.Run("should apply the configured window and timeout", func(t *testing.T) {
		// given
		spy := &doubles.SpyProbeRepository{}
		gate := services.NewAvailabilityGate(spy, entities.NewOfflineState())

		settings := entities.DefaultSettings()
		settings.API.ThrottleSeconds = 60
		gate.Configure(settings)

		now := time.Now()
		services.SetGateClock(gate, func() time.Time { return now })

		// when
		require.True(t, gate.IsAvailable(context.Background(), false))
		now = now.Add(30 * time.Second)
		require.True(t, gate.IsAvailable(context.Background(), false))

		// then: 30s is still inside the 60s window
		assert.Equal(t, 1, spy.ProbeCalls)
	})
}
