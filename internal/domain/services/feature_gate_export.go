//go:build integration || unit || test

package services

import "time"

// SetFeatureNotify overrides the notification sink and debounce delay for testing.
func SetFeatureNotify(gate *FeatureGate, delay time.Duration, notify func(ids []string)) {
	gate.mu.Lock()
	defer gate.mu.Unlock()
	gate.delay = delay
	gate.notify = notify
}
