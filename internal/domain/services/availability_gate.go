package services

import (
	"context"
	"errors"
	"sync"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hubward/internal/domain/entities"
	"github.com/rios0rios0/hubward/internal/domain/repositories"
)

// ConfirmFunc asks the user whether to switch to offline mode after a probe
// failure. It receives a human-readable reason and returns the decision.
type ConfirmFunc func(reason string) bool

const (
	defaultThrottleWindow = 10 * time.Second
	defaultProbeTimeout   = time.Second
)

// AvailabilityGate decides whether the remote API is reachable. Probes are
// throttled to at most one per window; a recent success is answered from the
// availability record without network traffic. Offline mode is authoritative
// and short-circuits the gate entirely.
type AvailabilityGate struct {
	mu      sync.Mutex
	probe   repositories.ProbeRepository
	offline *entities.OfflineState
	confirm ConfirmFunc
	record  entities.AvailabilityRecord
	window  time.Duration
	timeout time.Duration
	now     func() time.Time
}

// NewAvailabilityGate creates a gate with the default throttle window and
// probe timeout.
func NewAvailabilityGate(
	probe repositories.ProbeRepository,
	offline *entities.OfflineState,
) *AvailabilityGate {
	return &AvailabilityGate{
		probe:   probe,
		offline: offline,
		window:  defaultThrottleWindow,
		timeout: defaultProbeTimeout,
		now:     time.Now,
	}
}

// Configure applies the throttle window and probe timeout from settings.
func (it *AvailabilityGate) Configure(settings *entities.Settings) {
	it.mu.Lock()
	defer it.mu.Unlock()
	if window := settings.ThrottleWindow(); window > 0 {
		it.window = window
	}
	if timeout := settings.APITimeout(); timeout > 0 {
		it.timeout = timeout
	}
}

// SetConfirm installs the prompt offered when a probe fails. Without one the
// gate reports unavailability silently.
func (it *AvailabilityGate) SetConfirm(confirm ConfirmFunc) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.confirm = confirm
}

// IsAvailable reports whether the API can be reached. When ignoreOffline is
// false and offline mode is active, no probe is issued and the answer is
// false. On a failed probe the user is offered the switch to offline mode;
// declining leaves the mode unchanged and only this call reports false.
func (it *AvailabilityGate) IsAvailable(ctx context.Context, ignoreOffline bool) bool {
	if !ignoreOffline && it.offline.IsOffline() {
		return false
	}

	// The lock is held across the probe so the throttle check and the
	// record update stay atomic; concurrent callers cannot double-probe.
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.record.Fresh(it.now(), it.window) {
		return true
	}

	outcome := it.runProbe(ctx)
	if outcome.Available() {
		it.record.LastSuccess = it.now()
		return true
	}

	logger.Debugf("availability probe failed: %s", outcome.Reason())
	if it.confirm != nil && it.confirm(outcome.Reason()) {
		it.offline.GoOffline()
	}
	return false
}

// LastSuccess returns the timestamp of the most recent successful probe.
func (it *AvailabilityGate) LastSuccess() time.Time {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.record.LastSuccess
}

func (it *AvailabilityGate) runProbe(ctx context.Context) entities.ProbeOutcome {
	probeCtx, cancel := context.WithTimeout(ctx, it.timeout)
	defer cancel()

	err := it.probe.FetchServiceMetadata(probeCtx)
	switch {
	case err == nil:
		return entities.ProbeOutcome{Result: entities.ProbeAvailable}
	case errors.Is(err, context.DeadlineExceeded):
		return entities.ProbeOutcome{Result: entities.ProbeTimedOut}
	default:
		return entities.ProbeOutcome{Result: entities.ProbeErrored, Cause: err}
	}
}

func (it *AvailabilityGate) setClock(now func() time.Time) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.now = now
}
