// Package engine implements the Hook Engine (C7): an ordered pre/post
// pipeline that every tool call passes through before (and after) it runs.
// It is deliberately value-constructible rather than a package-level
// singleton, so a host can run several independent engines (e.g. one per
// workspace) in the same process without them sharing state.
package engine

import (
	"github.com/intentguard/igk/internal/diag"
	"github.com/intentguard/igk/internal/session"
)

// Outcome is the disjoint result a pre-hook reports.
type Outcome int

const (
	// Pass lets the invocation proceed unchanged.
	Pass Outcome = iota
	// Transform lets the invocation proceed with a substituted invocation
	// visible to subsequent hooks and the tool itself.
	Transform
	// Blocked halts the pipeline with a structured RejectionError; the tool
	// never runs. Used by policy rejections (Authorization, Scope,
	// OptimisticLock) per spec §7.
	Blocked
	// BlockedPlainText halts the pipeline with a plain-text governance
	// message instead of a RejectionError; the tool never runs. Used by the
	// Gatekeeper, whose block is recoverable by selecting an intent, not a
	// policy rejection the LLM needs a machine code to parse (spec §7).
	BlockedPlainText
)

// Decision is what a pre-hook returns from PreExecute.
type Decision struct {
	Outcome    Outcome
	Invocation session.ToolInvocation  // valid when Outcome == Transform
	Rejection  *session.RejectionError // valid when Outcome == Blocked
	PlainText  string                  // valid when Outcome == BlockedPlainText
}

// passDecision is the zero-allocation result every non-matching hook
// returns.
func passDecision() Decision { return Decision{Outcome: Pass} }

// Context carries the state a hook needs to make its decision: the current
// (possibly already-transformed) invocation, and the task session it
// belongs to.
type Context struct {
	Invocation session.ToolInvocation
	Task       *session.TaskSession
}

// Hook is a pre-phase pipeline stage.
type Hook interface {
	ID() string
	PreExecute(ctx Context) Decision
}

// PostHook is the optional post-phase extension a Hook may also implement.
type PostHook interface {
	PostExecute(ctx Context, toolResult string)
}

// Engine runs an ordered sequence of hooks.
type Engine struct {
	hooks []Hook
	diag  diag.Sink
}

// New returns an empty Engine. Passing a nil sink falls back to
// diag.Default().
func New(sink diag.Sink) *Engine {
	if sink == nil {
		sink = diag.Default()
	}
	return &Engine{diag: sink}
}

// Register appends hook to the pipeline, replacing any prior hook sharing
// its ID in place — this makes re-initialization idempotent, so a host can
// call Register for the canonical pipeline on every startup without
// accumulating duplicate hooks across reloads.
func (e *Engine) Register(hook Hook) {
	for i, h := range e.hooks {
		if h.ID() == hook.ID() {
			e.hooks[i] = hook
			return
		}
	}
	e.hooks = append(e.hooks, hook)
}

// Hooks returns the registered hooks in pipeline order. Exposed for
// introspection (e.g. "igk hooks show"); callers must not mutate the
// returned slice.
func (e *Engine) Hooks() []Hook {
	return e.hooks
}

// RunPre iterates pre-hooks in registration order. A Blocked or
// BlockedPlainText decision halts iteration and is returned immediately —
// the two outcomes are mutually exclusive, so exactly one of the two return
// values is non-empty on a block. A Transform decision replaces the
// invocation seen by subsequent hooks (and ultimately the tool). If every
// hook passes, the final (possibly transformed) invocation is returned with
// both blocks empty.
func (e *Engine) RunPre(ctx Context) (session.ToolInvocation, *session.RejectionError, string) {
	current := ctx.Invocation
	for _, h := range e.hooks {
		d := h.PreExecute(Context{Invocation: current, Task: ctx.Task})
		switch d.Outcome {
		case Blocked:
			return current, d.Rejection, ""
		case BlockedPlainText:
			return current, nil, d.PlainText
		case Transform:
			current = d.Invocation
		case Pass:
			// no-op
		}
	}
	return current, nil, ""
}

// RunPost invokes every hook implementing PostHook, in registration order.
// Each post-hook is independent: a panic in one is recovered and logged,
// and execution continues with the next hook, matching the "no post-hook
// aborts the others" contract.
func (e *Engine) RunPost(ctx Context, toolResult string) {
	for _, h := range e.hooks {
		ph, ok := h.(PostHook)
		if !ok {
			continue
		}
		e.runPostSafely(ph, ctx, toolResult)
	}
}

func (e *Engine) runPostSafely(ph PostHook, ctx Context, toolResult string) {
	defer func() {
		if r := recover(); r != nil {
			e.diag.Errorf("hook engine: post-hook panicked: %v", r)
		}
	}()
	ph.PostExecute(ctx, toolResult)
}
