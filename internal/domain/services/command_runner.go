package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/hubward/internal/domain/entities"
)

var (
	// ErrHelperNotInstalled reports that the helper executable is not on PATH.
	ErrHelperNotInstalled = errors.New("helper executable not found")
	// ErrHelperNotInitialized reports a missing or unusable helper configuration.
	ErrHelperNotInitialized = errors.New("helper is not initialized")
	// ErrHelperTimeout reports that an invocation exceeded its wall-clock budget.
	ErrHelperTimeout = errors.New("helper invocation timed out")
)

const defaultHelperTimeout = 5 * time.Second

var versionPattern = regexp.MustCompile(`\d+\.\d+\.\d+`)

// CommandRunner executes the external helper program. Every invocation is
// preceded by two precondition checks, in order: the executable must be
// discoverable on PATH, and its local configuration file must exist. Both
// failures are user-facing aborts, never retried. Every invocation is bound
// by a hard wall-clock timeout.
type CommandRunner struct {
	executable string
	configFile string
	timeout    time.Duration
	minVersion string
	debug      *entities.DebugState

	lookPath func(string) (string, error)
}

// NewCommandRunner creates a runner for the default helper. Configure must
// be called with the loaded settings before the first invocation.
func NewCommandRunner(debug *entities.DebugState) *CommandRunner {
	defaults := entities.DefaultSettings()
	return &CommandRunner{
		executable: defaults.Helper.Executable,
		configFile: defaults.HelperConfigFile(),
		timeout:    defaultHelperTimeout,
		debug:      debug,
		lookPath:   exec.LookPath,
	}
}

// Configure applies the helper settings.
func (it *CommandRunner) Configure(settings *entities.Settings) {
	if settings.Helper.Executable != "" {
		it.executable = settings.Helper.Executable
	}
	it.configFile = settings.HelperConfigFile()
	if timeout := settings.HelperTimeout(); timeout > 0 {
		it.timeout = timeout
	}
	it.minVersion = settings.Helper.MinimumVersion
}

// Executable returns the configured helper program name.
func (it *CommandRunner) Executable() string {
	return it.executable
}

// Run executes one helper invocation. On timeout the child process is
// deliberately not killed: the wait is abandoned, the process is reaped in
// the background when it eventually exits, and the caller proceeds as
// failed.
func (it *CommandRunner) Run(
	ctx context.Context,
	inv entities.HelperInvocation,
) (*entities.HelperOutput, error) {
	path, err := it.lookPath(it.executable)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: %q is not on your PATH, install it and try again",
			ErrHelperNotInstalled, it.executable,
		)
	}

	if it.configFile != "" {
		if _, statErr := os.Stat(it.configFile); statErr != nil {
			return nil, fmt.Errorf(
				"%w: configuration file %q not found, run %q once to create it",
				ErrHelperNotInitialized, it.configFile, it.executable,
			)
		}
	}

	timeout := inv.Timeout
	if timeout <= 0 {
		timeout = it.timeout
	}

	if it.debug.Enabled() {
		logger.Debugf("helper: %s %s (mode=%d timeout=%s)",
			it.executable, strings.Join(inv.Args, " "), inv.Mode, timeout)
	}

	cmd := exec.Command(path, inv.Args...)

	var stdout bytes.Buffer
	switch inv.Mode {
	case entities.RunSyncEditor:
		// Inherit the terminal so the helper can honor GIT_EDITOR.
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	case entities.RunCapture:
		cmd.Stdout = &stdout
	case entities.RunSync:
		// output discarded
	}

	if startErr := cmd.Start(); startErr != nil {
		return nil, fmt.Errorf("failed to start %q: %w", it.executable, startErr)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case waitErr := <-done:
		if waitErr != nil {
			return nil, fmt.Errorf(
				"%s %s: %w", it.executable, strings.Join(inv.Args, " "), waitErr,
			)
		}
	case <-timer.C:
		go func() { <-done }() // reap when the abandoned process exits
		return nil, fmt.Errorf(
			"%w after %s: %s %s",
			ErrHelperTimeout, timeout, it.executable, strings.Join(inv.Args, " "),
		)
	case <-ctx.Done():
		go func() { <-done }()
		return nil, ctx.Err()
	}

	output := &entities.HelperOutput{}
	if inv.Mode == entities.RunCapture {
		output.Raw = stdout.String()
		if !inv.Raw {
			output.Lines = splitLines(output.Raw)
		}
	}
	return output, nil
}

// CheckVersion enforces the configured minimum helper version by capturing
// the helper's --version output. A no-op when no minimum is configured.
func (it *CommandRunner) CheckVersion(ctx context.Context) error {
	if it.minVersion == "" {
		return nil
	}

	output, err := it.Run(ctx, entities.HelperInvocation{
		Args: []string{"--version"},
		Mode: entities.RunCapture,
		Raw:  true,
	})
	if err != nil {
		return err
	}

	version := versionPattern.FindString(output.Raw)
	if version == "" {
		return fmt.Errorf(
			"%w: cannot determine the version of %q",
			ErrHelperNotInitialized, it.executable,
		)
	}
	if semver.Compare(normalizeVersion(version), normalizeVersion(it.minVersion)) < 0 {
		return fmt.Errorf(
			"%w: version %s is older than the required %s",
			ErrHelperNotInitialized, version, it.minVersion,
		)
	}
	return nil
}

func normalizeVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

func splitLines(raw string) []string {
	trimmed := strings.TrimRight(raw, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
