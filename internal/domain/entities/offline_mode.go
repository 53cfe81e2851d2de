package entities

import "sync"

// OfflineMode controls whether data lookups may reach the network and how
// the cache collaborator is consulted.
type OfflineMode int

const (
	// OfflineModeDefault serves cached entries until they expire.
	OfflineModeDefault OfflineMode = iota
	// OfflineModeDisabled bypasses the cache entirely (reads always
	// recompute; results are still written through).
	OfflineModeDisabled
	// OfflineModeForced never touches the network; lookups are cache-only.
	OfflineModeForced
	// OfflineModeHardRefresh is a transient forced-offline variant that also
	// serves cache entries regardless of staleness. It is only ever active
	// for the dynamic extent of one explicit refresh operation.
	OfflineModeHardRefresh
)

func (m OfflineMode) String() string {
	switch m {
	case OfflineModeDisabled:
		return "cache-disabled"
	case OfflineModeForced:
		return "offline"
	case OfflineModeHardRefresh:
		return "offline (hard refresh)"
	default:
		return "online"
	}
}

// Offline reports whether the mode forbids network access.
func (m OfflineMode) Offline() bool {
	return m == OfflineModeForced || m == OfflineModeHardRefresh
}

// CachePolicy returns the cache consultation policy implied by the mode.
func (m OfflineMode) CachePolicy() CachePolicy {
	switch m {
	case OfflineModeDisabled:
		return CachePolicyBypass
	case OfflineModeForced, OfflineModeHardRefresh:
		return CachePolicyCacheOnly
	default:
		return CachePolicyDefault
	}
}

// OfflineState is the process-wide offline mode holder. Access is serialized
// so hosts running multiple goroutines observe a single consistent mode.
type OfflineState struct {
	mu   sync.Mutex
	mode OfflineMode
}

// NewOfflineState creates the state holder in the default (online) mode.
func NewOfflineState() *OfflineState {
	return &OfflineState{mode: OfflineModeDefault}
}

// Mode returns the currently active mode.
func (it *OfflineState) Mode() OfflineMode {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.mode
}

// SetMode replaces the active mode.
func (it *OfflineState) SetMode(mode OfflineMode) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.mode = mode
}

// IsOffline is true for both forced-offline variants.
func (it *OfflineState) IsOffline() bool {
	return it.Mode().Offline()
}

// GoOffline switches to forced-offline. A no-op when already offline.
func (it *OfflineState) GoOffline() {
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.mode.Offline() {
		return
	}
	it.mode = OfflineModeForced
}

// GoOnline returns to the default mode. A no-op when already online.
func (it *OfflineState) GoOnline() {
	it.mu.Lock()
	defer it.mu.Unlock()
	if !it.mode.Offline() {
		return
	}
	it.mode = OfflineModeDefault
}

// Toggle flips between offline and online and reports whether the state is
// now offline.
func (it *OfflineState) Toggle() bool {
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.mode.Offline() {
		it.mode = OfflineModeDefault
		return false
	}
	it.mode = OfflineModeForced
	return true
}

// WithHardRefresh runs fn with the mode forced to OfflineModeHardRefresh and
// restores the prior mode on every exit path, including panics.
func (it *OfflineState) WithHardRefresh(fn func() error) error {
	it.mu.Lock()
	prior := it.mode
	it.mode = OfflineModeHardRefresh
	it.mu.Unlock()

	defer func() {
		it.mu.Lock()
		it.mode = prior
		it.mu.Unlock()
	}()

	return fn()
}
