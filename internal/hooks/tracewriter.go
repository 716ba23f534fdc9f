package hooks

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/intentguard/igk/internal/classify"
	"github.com/intentguard/igk/internal/engine"
	"github.com/intentguard/igk/internal/hash"
	"github.com/intentguard/igk/internal/intent"
	"github.com/intentguard/igk/internal/session"
	"github.com/intentguard/igk/internal/trace"
)

// TraceWriter is the second post-hook: it appends one provenance
// entry per write-tool call made under an active intent.
type TraceWriter struct {
	Root    string
	Intents *intent.Store
	Ledger  *trace.Ledger
	// Now returns the current time. Overridable in tests; production code
	// should leave it nil, which defaults to time.Now.
	Now func() time.Time
}

// ID implements engine.Hook.
func (TraceWriter) ID() string { return "trace_writer" }

// PreExecute implements engine.Hook; TraceWriter has no pre-phase behavior.
func (TraceWriter) PreExecute(ctx engine.Context) engine.Decision {
	return engine.Decision{Outcome: engine.Pass}
}

// PostExecute implements engine.PostHook.
func (w TraceWriter) PostExecute(ctx engine.Context, toolResult string) {
	if !classify.IsWriteTool(ctx.Invocation.Tool) {
		return
	}
	if ctx.Task == nil || ctx.Task.ActiveIntentID == "" {
		return
	}

	path, ok := ctx.Invocation.Path()
	if !ok {
		return
	}
	rel := relativePosix(w.Root, path)
	abs := filepath.Join(w.Root, rel)

	isNewFile := !fileExists(abs)

	content, ok := w.extractContent(ctx.Invocation, abs)
	if !ok {
		return
	}

	explicit, _ := ctx.Invocation.Param("mutation_class")
	mutationClass := classify.ClassifyMutation(explicit, content, isNewFile)
	contentHash := hash.Hash(content)

	related := []trace.Related{{Type: "specification", Value: ctx.Task.ActiveIntentID}}
	if explicitIntentID, ok := ctx.Invocation.Param("intent_id"); ok && explicitIntentID != "" && explicitIntentID != ctx.Task.ActiveIntentID {
		related = append(related, trace.Related{Type: "requirement", Value: explicitIntentID})
	}

	now := time.Now
	if w.Now != nil {
		now = w.Now
	}

	entry := trace.Entry{
		ID:        trace.NewEntryID(),
		Timestamp: now().UTC().Format(time.RFC3339),
		Files: []trace.FileEntry{{
			RelativePath: rel,
			Conversations: []trace.Conversation{{
				URL:         ctx.Task.TaskID,
				Contributor: trace.Contributor{EntityType: ctx.Task.Model.EntityType, ModelIdentifier: ctx.Task.Model.ModelIdentifier},
				Ranges: []trace.Range{{
					StartLine:     1,
					EndLine:       strings.Count(content, "\n") + 1,
					ContentHash:   contentHash,
					MutationClass: string(mutationClass),
				}},
				Related: related,
			}},
		}},
	}

	w.Ledger.Append(entry)
}

// extractContent pulls the text to hash out of the tool invocation: the new
// content for a full-file write, the diff/patch/replace payload for an
// incremental edit, or (failing both) the whole current file on disk.
func (w TraceWriter) extractContent(inv session.ToolInvocation, abs string) (string, bool) {
	for _, key := range []string{"content", "diff", "new_string", "patch"} {
		if v, ok := inv.Param(key); ok && v != "" {
			return v, true
		}
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", false
	}
	return string(data), true
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
