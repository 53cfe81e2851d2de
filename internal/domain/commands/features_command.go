package commands

import (
	"context"
	"sort"

	"github.com/rios0rios0/hubward/internal/domain/entities"
	"github.com/rios0rios0/hubward/internal/domain/services"
)

// Features is the interface for listing feature resolutions.
type Features interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		opts FeaturesOptions,
	) ([]FeatureStatus, error)
}

// FeaturesOptions holds runtime options for one listing.
type FeaturesOptions struct {
	// Check lists extra feature identifiers to resolve (and to nudge about
	// when unconfigured) beyond the configured ones.
	Check []string
}

// FeatureStatus is one feature's resolution.
type FeatureStatus struct {
	ID     string
	Active bool
	State  entities.FeatureState
}

// FeaturesCommand lists the resolution of every known feature.
type FeaturesCommand struct {
	gate *services.FeatureGate
}

// NewFeaturesCommand creates a new FeaturesCommand.
func NewFeaturesCommand(gate *services.FeatureGate) *FeaturesCommand {
	return &FeaturesCommand{gate: gate}
}

// Execute resolves the configured features plus any extra identifiers.
func (it *FeaturesCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts FeaturesOptions,
) ([]FeatureStatus, error) {
	registry := settings.FeatureRegistry()
	it.gate.Configure(registry)

	ids := make(map[string]bool, len(registry)+len(opts.Check))
	for id := range registry {
		if id != entities.FeatureDefaultKey {
			ids[id] = true
		}
	}
	for _, id := range opts.Check {
		ids[id] = true
	}

	it.gate.NotifyIfUnconfigured(opts.Check...)

	statuses := make([]FeatureStatus, 0, len(ids))
	for id := range ids {
		statuses = append(statuses, FeatureStatus{
			ID:     id,
			Active: it.gate.Check(id),
			State:  it.gate.State(id),
		})
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].ID < statuses[j].ID })

	return statuses, nil
}
