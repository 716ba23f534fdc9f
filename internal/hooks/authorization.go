package hooks

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/intentguard/igk/internal/classify"
	"github.com/intentguard/igk/internal/diag"
	"github.com/intentguard/igk/internal/engine"
	"github.com/intentguard/igk/internal/session"
)

// BypassListFile is the conventional path, relative to the workspace root,
// of the authorization bypass list.
const BypassListFile = ".orchestration/.intentignore"

// Approver presents the modal approval dialog to the host UI and reports
// whether the human explicitly approved the pending tool call. Anything
// other than an explicit approval (including dismissal) must be treated as
// a rejection by the caller.
type Approver interface {
	Approve(tool, label, path string) bool
}

// Authorization is the fourth pre-hook: it gates DESTRUCTIVE tools
// behind either a bypass-list membership check or an interactive approval.
type Authorization struct {
	Root     string
	Approver Approver

	mu       sync.Mutex
	loaded   bool
	bypassed map[string]bool
	watcher  *fsnotify.Watcher
}

// ID implements engine.Hook.
func (*Authorization) ID() string { return "authorization" }

// PreExecute implements engine.Hook.
func (a *Authorization) PreExecute(ctx engine.Context) engine.Decision {
	if classify.Classify(ctx.Invocation.Tool) != classify.Destructive {
		return engine.Decision{Outcome: engine.Pass}
	}

	intentID := ""
	if ctx.Task != nil {
		intentID = ctx.Task.ActiveIntentID
	}
	if a.isBypassed(intentID) {
		return engine.Decision{Outcome: engine.Pass}
	}

	path, _ := ctx.Invocation.Path()
	label := humanizeToolName(ctx.Invocation.Tool)

	approved := a.Approver != nil && a.Approver.Approve(ctx.Invocation.Tool, label, path)
	if approved {
		return engine.Decision{Outcome: engine.Pass}
	}

	rej := classify.BuildRejectionError(
		ctx.Invocation.Tool,
		session.CodeUserRejectedIntentEvolution,
		"The human did not approve this action.",
		"",
		intentIDPtr(ctx.Task),
	)
	return engine.Decision{Outcome: engine.Blocked, Rejection: &rej}
}

// humanizeToolName turns a snake_case tool name into a human-readable label
// for the approval dialog, e.g. "write_to_file" -> "write to file".
func humanizeToolName(tool string) string {
	return strings.ReplaceAll(tool, "_", " ")
}

// isBypassed loads the bypass list on first use and caches it; call
// Invalidate to force a reload (e.g. once the watcher observes a change).
func (a *Authorization) isBypassed(intentID string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.loaded {
		a.bypassed = a.readBypassList()
		a.loaded = true
		a.startWatch()
	}
	return intentID != "" && a.bypassed[intentID]
}

// Invalidate discards the cached bypass list, forcing the next check to
// reload it from disk.
func (a *Authorization) Invalidate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loaded = false
}

// readBypassList parses the bypass list at Root/BypassListFile: one intent
// id per non-blank, non-comment line. Any I/O failure degrades to "no
// bypass" (an empty set) rather than blocking the hook outright.
func (a *Authorization) readBypassList() map[string]bool {
	out := make(map[string]bool)

	f, err := os.Open(filepath.Join(a.Root, BypassListFile))
	if err != nil {
		return out
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out[line] = true
	}
	return out
}

// startWatch installs an fsnotify watch on the bypass-list file so an
// external edit invalidates the cache without the hook having to poll.
// Failure to establish a watch (missing directory, platform limits) is
// logged and otherwise harmless: the cache still reloads lazily whenever
// Invalidate is called explicitly.
func (a *Authorization) startWatch() {
	if a.watcher != nil {
		return
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		diag.Default().Errorf("authorization hook: fsnotify unavailable: %v", err)
		return
	}
	dir := filepath.Join(a.Root, filepath.Dir(BypassListFile))
	if err := w.Add(dir); err != nil {
		diag.Default().Errorf("authorization hook: watch %s: %v", dir, err)
		_ = w.Close()
		return
	}
	a.watcher = w

	go func() {
		target := filepath.Join(a.Root, BypassListFile)
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) == filepath.Clean(target) {
					a.Invalidate()
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
}

// Close stops the bypass-list watcher, if one was started.
func (a *Authorization) Close() error {
	a.mu.Lock()
	w := a.watcher
	a.watcher = nil
	a.mu.Unlock()

	if w == nil {
		return nil
	}
	return w.Close()
}
