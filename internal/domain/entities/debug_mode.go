package entities

import "sync"

// DebugState is the process-wide debug switch gating the structured log
// line emitted per probe and per helper invocation. Its dry-run sub-mode
// substitutes no-op stand-ins for the network-facing call family only;
// helper commands still run.
type DebugState struct {
	mu      sync.Mutex
	enabled bool
	dryRun  bool
}

func NewDebugState() *DebugState {
	return &DebugState{}
}

func (it *DebugState) Enabled() bool {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.enabled
}

func (it *DebugState) SetEnabled(enabled bool) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.enabled = enabled
}

func (it *DebugState) DryRun() bool {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.dryRun
}

func (it *DebugState) SetDryRun(dryRun bool) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.dryRun = dryRun
}
