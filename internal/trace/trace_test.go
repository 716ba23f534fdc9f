package trace

import (
	"path/filepath"
	"testing"

	"github.com/intentguard/igk/internal/diag"
)

func newEntry(path, intentID string) Entry {
	return Entry{
		ID:        NewEntryID(),
		Timestamp: "2026-08-03T00:00:00Z",
		Files: []FileEntry{{
			RelativePath: path,
			Conversations: []Conversation{{
				URL:         "task-1",
				Contributor: Contributor{EntityType: "ai_agent", ModelIdentifier: "test-model"},
				Ranges:      []Range{{StartLine: 1, EndLine: 3, ContentHash: "sha256:abc", MutationClass: "INTENT_EVOLUTION"}},
				Related:     []Related{{Type: "specification", Value: intentID}},
			}},
		}},
	}
}

func TestAppendAndLoadGraph(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "agent_trace.jsonl")

	l := New(path, &diag.Recorder{})
	l.Append(newEntry("src/auth/login.ts", "INT-001"))
	l.Append(newEntry("src/payments/pay.ts", "INT-002"))

	g, err := LoadGraph(path)
	if err != nil {
		t.Fatalf("LoadGraph failed: %v", err)
	}
	if len(g.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(g.Entries))
	}
}

func TestLoadGraphMissingFile(t *testing.T) {
	g, err := LoadGraph(filepath.Join(t.TempDir(), "nope.jsonl"))
	if err != nil {
		t.Fatalf("missing ledger should not error: %v", err)
	}
	if len(g.Entries) != 0 {
		t.Error("expected an empty graph")
	}
}

func TestTraceMatchesByPath(t *testing.T) {
	g := &Graph{Entries: []Entry{newEntry("src/auth/login.ts", "INT-001")}}
	matches := g.Trace("src/auth/login.ts")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
}

func TestTraceFallsBackToBasename(t *testing.T) {
	g := &Graph{Entries: []Entry{newEntry("src/auth/login.ts", "INT-001")}}
	matches := g.Trace("login.ts")
	if len(matches) != 1 {
		t.Fatalf("expected basename fallback to match, got %d", len(matches))
	}
}

func TestFindBySession(t *testing.T) {
	g := &Graph{Entries: []Entry{newEntry("a.ts", "INT-001")}}
	if len(g.FindBySession("task-1")) != 1 {
		t.Error("expected to find entry by session")
	}
	if len(g.FindBySession("other")) != 0 {
		t.Error("expected no match for an unknown session")
	}
}

func TestFindByIntent(t *testing.T) {
	g := &Graph{Entries: []Entry{newEntry("a.ts", "INT-001"), newEntry("b.ts", "INT-002")}}
	if len(g.FindByIntent("INT-001")) != 1 {
		t.Error("expected exactly one entry tagged INT-001")
	}
}

func TestGetStats(t *testing.T) {
	g := &Graph{Entries: []Entry{newEntry("a.ts", "INT-001"), newEntry("b.ts", "INT-001")}}
	stats := g.GetStats()
	if stats.TotalEntries != 2 {
		t.Errorf("TotalEntries = %d, want 2", stats.TotalEntries)
	}
	if stats.UniqueFiles != 2 {
		t.Errorf("UniqueFiles = %d, want 2", stats.UniqueFiles)
	}
	if stats.UniqueIntents != 1 {
		t.Errorf("UniqueIntents = %d, want 1", stats.UniqueIntents)
	}
	if stats.MutationClasses["INTENT_EVOLUTION"] != 2 {
		t.Errorf("MutationClasses[INTENT_EVOLUTION] = %d, want 2", stats.MutationClasses["INTENT_EVOLUTION"])
	}
}

func TestAppendBestEffortDoesNotPanicOnBadPath(t *testing.T) {
	rec := &diag.Recorder{}
	// A path whose parent cannot be created (empty string component under a
	// file, not a directory) should log rather than panic.
	l := New(filepath.Join(t.TempDir(), "x", "y", "z", "trace.jsonl"), rec)
	l.Append(newEntry("a.ts", "INT-001"))
	if len(rec.Error) != 0 {
		t.Errorf("expected append to succeed (dirs auto-created), got errors: %v", rec.Error)
	}
}
