package services

import (
	"strings"
	"sync"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hubward/internal/domain/entities"
)

const defaultNotifyDelay = 2 * time.Second

// FeatureGate resolves optional named behaviors against the configured
// registry and nudges the user, once, about unconfigured ones. The nudge is
// best effort: it never blocks the feature-gated code path.
type FeatureGate struct {
	mu           sync.Mutex
	registry     entities.FeatureRegistry
	acknowledged map[string]bool
	pending      []string
	timer        *time.Timer
	delay        time.Duration
	notify       func(ids []string)
}

// NewFeatureGate creates a gate with an empty registry. Configure installs
// the registry built from settings.
func NewFeatureGate() *FeatureGate {
	return &FeatureGate{
		registry:     entities.FeatureRegistry{},
		acknowledged: make(map[string]bool),
		delay:        defaultNotifyDelay,
		notify: func(ids []string) {
			logger.Infof(
				"Features %s are not configured; they fall back to the %q default.",
				strings.Join(ids, ", "), entities.FeatureDefaultKey,
			)
		},
	}
}

// Configure replaces the feature registry.
func (it *FeatureGate) Configure(registry entities.FeatureRegistry) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.registry = registry
}

// Check reports whether the feature is active: explicit entry, then the
// wildcard default, then false.
func (it *FeatureGate) Check(id string) bool {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.registry.Resolve(id)
}

// State returns the explicitly configured state for the feature.
func (it *FeatureGate) State(id string) entities.FeatureState {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.registry.State(id)
}

// NotifyIfUnconfigured schedules a single debounced notification listing the
// given features that have no explicit configuration, then marks them
// acknowledged so the same set does not re-notify.
func (it *FeatureGate) NotifyIfUnconfigured(ids ...string) {
	it.mu.Lock()
	defer it.mu.Unlock()

	for _, id := range ids {
		if it.acknowledged[id] {
			continue
		}
		if it.registry.State(id) != entities.FeatureUnset {
			continue
		}
		it.acknowledged[id] = true
		it.pending = append(it.pending, id)
	}

	if len(it.pending) == 0 {
		return
	}
	if it.timer != nil {
		it.timer.Stop()
	}
	it.timer = time.AfterFunc(it.delay, it.fire)
}

// Close stops any pending notification timer.
func (it *FeatureGate) Close() {
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.timer != nil {
		it.timer.Stop()
		it.timer = nil
	}
}

func (it *FeatureGate) fire() {
	it.mu.Lock()
	ids := it.pending
	it.pending = nil
	notify := it.notify
	it.mu.Unlock()

	if len(ids) > 0 && notify != nil {
		notify(ids)
	}
}
