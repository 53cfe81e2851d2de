package entities

import "time"

// RunMode selects how a helper invocation handles its input and output.
type RunMode int

const (
	// RunSync blocks until the helper exits; output is discarded. Used for
	// mutating commands such as checkout.
	RunSync RunMode = iota
	// RunSyncEditor blocks and inherits the terminal so the helper can open
	// an interactive editor (commit messages and the like).
	RunSyncEditor
	// RunCapture blocks and captures standard output.
	RunCapture
)

// HelperInvocation describes one call to the external helper program. It is
// constructed per call and never persisted.
type HelperInvocation struct {
	Args []string
	Mode RunMode
	// Raw keeps captured output as one opaque string instead of splitting
	// it into lines. Only meaningful with RunCapture.
	Raw bool
	// Timeout overrides the runner default when positive.
	Timeout time.Duration
}

// HelperOutput carries the captured output of a helper invocation.
type HelperOutput struct {
	Raw   string
	Lines []string
}
