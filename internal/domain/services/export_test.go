package services

import "time"

// SetGateClock exports (*AvailabilityGate).setClock for testing.
var SetGateClock = (*AvailabilityGate).setClock //nolint:gochecknoglobals // test export

// SetGateWindow overrides the throttle window for testing.
func SetGateWindow(gate *AvailabilityGate, window time.Duration) {
	gate.mu.Lock()
	defer gate.mu.Unlock()
	gate.window = window
}

// SetGateTimeout overrides the probe timeout for testing.
func SetGateTimeout(gate *AvailabilityGate, timeout time.Duration) {
	gate.mu.Lock()
	defer gate.mu.Unlock()
	gate.timeout = timeout
}

// SetRunnerLookPath overrides executable discovery for testing.
func SetRunnerLookPath(runner *CommandRunner, lookPath func(string) (string, error)) {
	runner.lookPath = lookPath
}

// SetRunnerExecutable points the runner at an arbitrary executable for testing.
func SetRunnerExecutable(runner *CommandRunner, executable, configFile string) {
	runner.executable = executable
	runner.configFile = configFile
}

// SetRunnerMinVersion sets the version floor for testing.
func SetRunnerMinVersion(runner *CommandRunner, minVersion string) {
	runner.minVersion = minVersion
}
