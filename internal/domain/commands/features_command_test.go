//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/hubward/internal/domain/commands"
	"github.com/rios0rios0/hubward/internal/domain/entities"
	"github.com/rios0rios0/hubward/internal/domain/services"
)

func TestFeaturesCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should list configured features sorted by identifier", func(t *testing.T) {
		// given
		gate := services.NewFeatureGate()
		defer gate.Close()
		cmd := commands.NewFeaturesCommand(gate)

		settings := entities.DefaultSettings()
		settings.Features = map[string]bool{
			"issue-tracking":  false,
			"commit-browsing": true,
		}

		// when
		statuses, err := cmd.Execute(context.Background(), settings, commands.FeaturesOptions{})

		// then
		require.NoError(t, err)
		require.Len(t, statuses, 2)
		assert.Equal(t, "commit-browsing", statuses[0].ID)
		assert.True(t, statuses[0].Active)
		assert.Equal(t, entities.FeatureEnabled, statuses[0].State)
		assert.Equal(t, "issue-tracking", statuses[1].ID)
		assert.False(t, statuses[1].Active)
		assert.Equal(t, entities.FeatureDisabled, statuses[1].State)
	})

	t.Run("should include extra identifiers and nudge about them", func(t *testing.T) {
		// given
		gate := services.NewFeatureGate()
		defer gate.Close()

		fired := make(chan []string, 1)
		services.SetFeatureNotify(gate, 10*time.Millisecond, func(ids []string) {
			fired <- ids
		})

		cmd := commands.NewFeaturesCommand(gate)

		// when
		statuses, err := cmd.Execute(context.Background(), entities.DefaultSettings(),
			commands.FeaturesOptions{Check: []string{"pull-request-merge"}})

		// then
		require.NoError(t, err)
		require.Len(t, statuses, 1)
		assert.Equal(t, "pull-request-merge", statuses[0].ID)
		assert.Equal(t, entities.FeatureUnset, statuses[0].State)
		assert.False(t, statuses[0].Active)

		select {
		case ids := <-fired:
			assert.Equal(t, []string{"pull-request-merge"}, ids)
		case <-time.After(time.Second):
			t.Fatal("nudge never fired")
		}
	})

	t.Run("should not list the wildcard itself", func(t *testing.T) {
		// given
		gate := services.NewFeatureGate()
		defer gate.Close()
		cmd := commands.NewFeaturesCommand(gate)

		settings := entities.DefaultSettings()
		settings.Features = map[string]bool{"*": true, "commit-browsing": false}

		// when
		statuses, err := cmd.Execute(context.Background(), settings, commands.FeaturesOptions{})

		// then
		require.NoError(t, err)
		require.Len(t, statuses, 1)
		assert.Equal(t, "commit-browsing", statuses[0].ID)
	})
}
