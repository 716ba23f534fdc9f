package hooks

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/intentguard/igk/internal/classify"
	"github.com/intentguard/igk/internal/engine"
	"github.com/intentguard/igk/internal/hash"
	"github.com/intentguard/igk/internal/session"
)

// OptimisticLock is the second pre-hook: a compare-and-set check on
// write tools. Supplying expected_hash is opt-in — its absence (or an empty
// string against a file that doesn't exist yet) passes, since first-write
// scenarios have nothing to compare against.
type OptimisticLock struct {
	// Root is the workspace root write-tool paths are resolved against.
	Root string
}

// ID implements engine.Hook.
func (OptimisticLock) ID() string { return "optimistic_lock" }

// PreExecute implements engine.Hook.
func (o OptimisticLock) PreExecute(ctx engine.Context) engine.Decision {
	if !classify.IsWriteTool(ctx.Invocation.Tool) {
		return engine.Decision{Outcome: engine.Pass}
	}

	expected, _ := ctx.Invocation.Param("expected_hash")

	path, ok := ctx.Invocation.Path()
	if !ok {
		return engine.Decision{Outcome: engine.Pass}
	}
	abs := filepath.Join(o.Root, path)

	content, err := os.ReadFile(abs)
	switch {
	case os.IsNotExist(err):
		if expected == "" {
			return engine.Decision{Outcome: engine.Pass}
		}
		rej := classify.BuildRejectionError(
			ctx.Invocation.Tool,
			session.CodeStaleFile,
			fmt.Sprintf("%s no longer exists, but a write expected it to.", path),
			"",
			intentIDPtr(ctx.Task),
		)
		return engine.Decision{Outcome: engine.Blocked, Rejection: &rej}
	case err != nil:
		// Filesystem degraded for an unrelated reason (permissions, etc):
		// don't gate on the lock hook when the read itself is unreliable.
		return engine.Decision{Outcome: engine.Pass}
	}

	if expected == "" {
		return engine.Decision{Outcome: engine.Pass}
	}

	current := hash.Hash(string(content))
	if current == expected {
		return engine.Decision{Outcome: engine.Pass}
	}

	rej := classify.BuildRejectionError(
		ctx.Invocation.Tool,
		session.CodeStaleFile,
		fmt.Sprintf("%s has changed since it was last read.", path),
		fmt.Sprintf("Re-read %s (current hash %s) and retry with that hash as expected_hash.", path, current),
		intentIDPtr(ctx.Task),
	)
	return engine.Decision{Outcome: engine.Blocked, Rejection: &rej}
}

// intentIDPtr returns a pointer to the task's active intent id, or nil if
// there is no task or no active intent, matching RejectionError.IntentID's
// nullable wire contract.
func intentIDPtr(task *session.TaskSession) *string {
	if task == nil || task.ActiveIntentID == "" {
		return nil
	}
	id := task.ActiveIntentID
	return &id
}
