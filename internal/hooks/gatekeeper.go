// Package hooks implements the canonical pre/post pipeline (C8-C13) wired
// by internal/engine: Gatekeeper, OptimisticLock, ScopeEnforcement, and
// Authorization as pre-hooks; IntentUpdate and TraceWriter as post-hooks.
package hooks

import (
	"github.com/intentguard/igk/internal/classify"
	"github.com/intentguard/igk/internal/engine"
)

// gatekeeperMessage is the fixed governance message returned when a
// side-effecting tool runs with no active intent. Per spec §7, governance
// errors are "recoverable by selecting an intent; surfaced as a plain-text
// block message" — distinct from the structured RejectionError JSON the
// policy hooks (Authorization, Scope, OptimisticLock) return.
const gatekeeperMessage = "No active intent is selected for this task. Select an intent before making changes.\n\nCall select_active_intent with an intent id from the registry, then retry."

// Gatekeeper is the first pre-hook in the canonical pipeline (C8): it
// blocks side-effecting tools outright when the task has no active intent.
// It consults nothing but ctx.Task, so it is O(1) and cannot fail on I/O.
type Gatekeeper struct{}

// ID implements engine.Hook.
func (Gatekeeper) ID() string { return "gatekeeper" }

// PreExecute implements engine.Hook.
func (Gatekeeper) PreExecute(ctx engine.Context) engine.Decision {
	if !classify.IsSideEffecting(ctx.Invocation.Tool) {
		return engine.Decision{Outcome: engine.Pass}
	}
	if ctx.Task != nil && ctx.Task.ActiveIntentID != "" {
		return engine.Decision{Outcome: engine.Pass}
	}

	return engine.Decision{Outcome: engine.BlockedPlainText, PlainText: gatekeeperMessage}
}
