//go:build unit

package commands_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/hubward/internal/domain/commands"
	"github.com/rios0rios0/hubward/internal/domain/entities"
	"github.com/rios0rios0/hubward/internal/domain/services"
	doubles "github.com/rios0rios0/hubward/test/infrastructure/repositorydoubles"
)

func TestStatusCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should short-circuit when the integration is disabled", func(t *testing.T) {
		// given
		probe := &doubles.SpyProbeRepository{}
		offline := entities.NewOfflineState()
		gate := services.NewAvailabilityGate(probe, offline)
		runner := services.NewCommandRunner(entities.NewDebugState())
		hostcfg := &doubles.StubHostConfigRepository{
			Values: map[string]string{"enabled": "false"},
		}
		cmd := commands.NewStatusCommand(gate, runner, offline, hostcfg)

		// when
		report, err := cmd.Execute(
			context.Background(), entities.DefaultSettings(), commands.StatusOptions{Dir: "."})

		// then
		require.NoError(t, err)
		assert.False(t, report.Enabled)
		assert.Zero(t, probe.ProbeCalls)
	})

	t.Run("should collect mode, identity, availability, and helper state", func(t *testing.T) {
		// given
		probe := &doubles.SpyProbeRepository{}
		offline := entities.NewOfflineState()
		gate := services.NewAvailabilityGate(probe, offline)

		runner := services.NewCommandRunner(entities.NewDebugState())

		hostcfg := &doubles.StubHostConfigRepository{
			Remotes: map[string]string{"origin": "git@github.com:octocat/hello-world.git"},
			Values:  map[string]string{},
		}
		cmd := commands.NewStatusCommand(gate, runner, offline, hostcfg)

		settings := entities.DefaultSettings()
		settings.Helper.Executable = "definitely-not-a-real-helper-binary"
		settings.Helper.ConfigFile = filepath.Join(t.TempDir(), "absent-config")
		settings.Helper.MinimumVersion = "2.0.0" // forces the version check to run the helper

		// when
		report, err := cmd.Execute(context.Background(), settings, commands.StatusOptions{Dir: "."})

		// then
		require.NoError(t, err)
		assert.True(t, report.Enabled)
		assert.Equal(t, entities.OfflineModeDefault, report.Mode)
		require.NotNil(t, report.Identity)
		assert.Equal(t, "octocat/hello-world", report.Identity.Slug())
		assert.True(t, report.Available)
		assert.False(t, report.HelperOK)
		require.ErrorIs(t, report.HelperErr, services.ErrHelperNotInstalled)
	})

	t.Run("should report the persisted offline mode without probing", func(t *testing.T) {
		// given
		probe := &doubles.SpyProbeRepository{}
		offline := entities.NewOfflineState()
		gate := services.NewAvailabilityGate(probe, offline)
		runner := services.NewCommandRunner(entities.NewDebugState())
		hostcfg := &doubles.StubHostConfigRepository{
			Remotes: map[string]string{"origin": "git@github.com:octocat/hello-world.git"},
			Values:  map[string]string{"offline": "true"},
		}
		cmd := commands.NewStatusCommand(gate, runner, offline, hostcfg)

		// when
		report, err := cmd.Execute(
			context.Background(), entities.DefaultSettings(), commands.StatusOptions{Dir: "."})

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.OfflineModeForced, report.Mode)
		assert.False(t, report.Available)
		assert.Zero(t, probe.ProbeCalls)
	})
}
