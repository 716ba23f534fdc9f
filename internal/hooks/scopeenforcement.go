package hooks

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/intentguard/igk/internal/classify"
	"github.com/intentguard/igk/internal/engine"
	"github.com/intentguard/igk/internal/intent"
	"github.com/intentguard/igk/internal/scope"
	"github.com/intentguard/igk/internal/session"
)

// ScopeEnforcement is the third pre-hook: it confines write tools to
// the active intent's owned_scope, when one is declared.
type ScopeEnforcement struct {
	Root    string
	Intents *intent.Store
}

// ID implements engine.Hook.
func (ScopeEnforcement) ID() string { return "scope_enforcement" }

// PreExecute implements engine.Hook.
func (s ScopeEnforcement) PreExecute(ctx engine.Context) engine.Decision {
	if !classify.IsWriteTool(ctx.Invocation.Tool) {
		return engine.Decision{Outcome: engine.Pass}
	}
	if ctx.Task == nil || ctx.Task.ActiveIntentID == "" {
		return engine.Decision{Outcome: engine.Pass}
	}

	path, ok := ctx.Invocation.Path()
	if !ok {
		return engine.Decision{Outcome: engine.Pass}
	}

	in, found := s.Intents.Find(ctx.Task.ActiveIntentID)
	if !found {
		// Cannot enforce a scope for an intent the registry doesn't know.
		return engine.Decision{Outcome: engine.Pass}
	}
	if len(in.OwnedScope) == 0 {
		return engine.Decision{Outcome: engine.Pass}
	}

	rel := relativePosix(s.Root, path)
	for _, pattern := range in.OwnedScope {
		if scope.Match(rel, pattern) {
			return engine.Decision{Outcome: engine.Pass}
		}
	}

	rej := classify.BuildRejectionError(
		ctx.Invocation.Tool,
		session.CodeScopeViolation,
		fmt.Sprintf("%s is outside the active intent's owned scope.", rel),
		fmt.Sprintf("Allowed patterns: %s", strings.Join(in.OwnedScope, ", ")),
		intentIDPtr(ctx.Task),
	)
	return engine.Decision{Outcome: engine.Blocked, Rejection: &rej}
}

// relativePosix resolves path against root and returns a POSIX-separated,
// root-relative path. If path cannot be made relative (e.g. it already is
// relative, or escapes root), it is returned POSIX-normalized as-is.
func relativePosix(root, path string) string {
	abs := path
	if !filepath.IsAbs(path) {
		abs = filepath.Join(root, path)
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
