package entities

import "time"

// ProbeResult classifies the outcome of one availability probe.
type ProbeResult int

const (
	ProbeAvailable ProbeResult = iota
	ProbeTimedOut
	ProbeErrored
)

// ProbeOutcome is the ephemeral result of a single availability probe. It is
// produced per call and never persisted.
type ProbeOutcome struct {
	Result ProbeResult
	Cause  error
}

// Available reports whether the probe reached the service.
func (it ProbeOutcome) Available() bool {
	return it.Result == ProbeAvailable
}

// Reason returns a human-readable explanation for a failed probe.
func (it ProbeOutcome) Reason() string {
	switch it.Result {
	case ProbeTimedOut:
		return "the API did not answer within the configured timeout"
	case ProbeErrored:
		if it.Cause != nil {
			return it.Cause.Error()
		}
		return "the API request failed"
	default:
		return ""
	}
}

// AvailabilityRecord tracks the last successful probe. A failed probe leaves
// the record untouched; a stale success time is the signal of
// unavailability, not an explicit failure flag.
type AvailabilityRecord struct {
	LastSuccess time.Time
}

// Fresh reports whether the last success falls within the throttle window.
func (it AvailabilityRecord) Fresh(now time.Time, window time.Duration) bool {
	return !it.LastSuccess.IsZero() && now.Sub(it.LastSuccess) < window
}
