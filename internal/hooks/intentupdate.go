package hooks

import (
	"github.com/intentguard/igk/internal/diag"
	"github.com/intentguard/igk/internal/engine"
	"github.com/intentguard/igk/internal/intent"
	"github.com/intentguard/igk/internal/session"
)

// IntentUpdate is the first post-hook: it advances intent status in
// reaction to select_active_intent and attempt_completion, the only two
// tools it reacts to.
type IntentUpdate struct {
	Intents *intent.Store
	Diag    diag.Sink
}

func (u IntentUpdate) diag() diag.Sink {
	if u.Diag != nil {
		return u.Diag
	}
	return diag.Default()
}

// ID implements engine.Hook.
func (IntentUpdate) ID() string { return "intent_update" }

// PreExecute implements engine.Hook so IntentUpdate can sit in the same
// pipeline slice as the pre-hooks without a separate post-only registry;
// it always passes, since all of its behavior is in PostExecute.
func (IntentUpdate) PreExecute(ctx engine.Context) engine.Decision {
	return engine.Decision{Outcome: engine.Pass}
}

// PostExecute implements engine.PostHook.
func (u IntentUpdate) PostExecute(ctx engine.Context, toolResult string) {
	if ctx.Task == nil {
		return
	}

	switch ctx.Invocation.Tool {
	case "select_active_intent":
		id, ok := ctx.Invocation.Param("intent_id")
		if !ok || id == "" {
			id = ctx.Task.ActiveIntentID
		}
		if id == "" {
			return
		}
		if err := u.Intents.SetStatus(id, session.StatusInProgress); err != nil {
			u.diag().Debugf("intent update: %v", err)
		}
	case "attempt_completion":
		if ctx.Task.ActiveIntentID == "" {
			return
		}
		if err := u.Intents.SetStatus(ctx.Task.ActiveIntentID, session.StatusCompleted); err != nil {
			u.diag().Debugf("intent update: %v", err)
		}
	}
}
