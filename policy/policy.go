// Package policy checks host API calls against the loaded configuration
// before they touch any state.
package policy

import (
	"flmodel/debug"
	"flmodel/errs"
	"flmodel/state"
)

// Op describes a host API operation
type Op struct {
	Name       string
	Since      int  // first API version providing the call; 0 for always
	Deprecated int  // API version deprecating the call; 0 for never
	KeyEcho    bool // the call is delivered to the host as a keystroke
	Unsafe     bool // the host refuses the call while busy
}

// Guard checks operations against a store's configuration and state
type Guard struct {
	store *state.Store
}

// NewGuard creates a guard reading from store
func NewGuard(store *state.Store) *Guard {
	return &Guard{store: store}
}

// Check returns the policy violation op would cause, or nil
func (g *Guard) Check(op Op) error {
	cfg := g.store.Config()
	target := cfg.TargetVersion()

	if op.Deprecated > 0 && target >= op.Deprecated && cfg.DisallowDeprecatedFunctions {
		return g.violation(errs.CodeCallDeprecated, "%s is deprecated since API version %d (target %d)", op.Name, op.Deprecated, target)
	}
	if target < op.Since && cfg.DisallowFutureFunctions {
		return g.violation(errs.CodeCallFuture, "%s needs API version %d (target %d)", op.Name, op.Since, target)
	}
	if op.KeyEcho && cfg.DisallowKeyEchoes {
		return g.violation(errs.CodeCallKeyEcho, "%s echoes a keystroke to the host", op.Name)
	}
	if op.Unsafe {
		if busy := g.store.Get().General.Busy; busy != state.Idle {
			return g.violation(errs.CodeOperationUnsafe, "%s is unsafe while the host is %v", op.Name, busy)
		}
	}
	return nil
}

func (g *Guard) violation(code errs.Code, format string, args ...any) error {
	err := errs.Newf(code, format, args...)
	debug.Log("policy", "%v", err)
	return err
}
