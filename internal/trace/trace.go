// Package trace implements the Trace Ledger (C6): an append-only JSONL
// provenance log linking file regions to the intents and conversations that
// produced them, plus query helpers grounded on the same trace-graph idiom
// the kernel uses for "where did this artifact come from" lookups.
package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/intentguard/igk/internal/diag"
)

// LedgerFile is the conventional path, relative to the workspace root, of
// the trace ledger.
const LedgerFile = ".orchestration/agent_trace.jsonl"

// Contributor identifies the entity that produced a range of content.
type Contributor struct {
	EntityType     string `json:"entity_type"`
	ModelIdentifier string `json:"model_identifier"`
}

// Range is a contiguous span within a file, tagged with its content hash
// (the state of that span at the time of the write) and the mutation class
// the Mutation Classifier assigned to it.
type Range struct {
	StartLine     int    `json:"start_line"`
	EndLine       int    `json:"end_line"`
	ContentHash   string `json:"content_hash"`
	MutationClass string `json:"mutation_class"`
}

// Related tags a trace entry with the specification or requirement it
// fulfills. Every TraceEntry must carry a Related of type "specification"
// naming the active intent (§3 invariant: every entry references at least
// one intent via related); an explicit distinct intent_id supplied with the
// tool call adds a second Related of type "requirement".
type Related struct {
	Type  string `json:"type"` // "specification" | "requirement"
	Value string `json:"value"`
}

// Conversation is one contributor's activity against a file within a
// TraceEntry.
type Conversation struct {
	URL         string      `json:"url,omitempty"`
	Contributor Contributor `json:"contributor"`
	Ranges      []Range     `json:"ranges"`
	Related     []Related   `json:"related"`
}

// FileEntry is the per-file section of a TraceEntry.
type FileEntry struct {
	RelativePath  string         `json:"relative_path"`
	Conversations []Conversation `json:"conversations"`
}

// VCS carries the revision the write happened against, when known.
type VCS struct {
	RevisionID string `json:"revision_id,omitempty"`
}

// Entry is a single append-only provenance record (§3 TraceEntry).
type Entry struct {
	ID        string    `json:"id"`
	Timestamp string    `json:"timestamp"` // ISO-8601
	VCS       *VCS      `json:"vcs,omitempty"`
	Files     []FileEntry `json:"files"`
}

// NewEntryID returns a fresh trace entry identifier.
func NewEntryID() string {
	return uuid.NewString()
}

// Ledger appends entries to, and queries, the trace file at Path.
type Ledger struct {
	Path string
	diag diag.Sink
}

// New returns a Ledger rooted at path, logging best-effort failures to sink.
// A nil sink falls back to diag.Default().
func New(path string, sink diag.Sink) *Ledger {
	if sink == nil {
		sink = diag.Default()
	}
	return &Ledger{Path: path, diag: sink}
}

// Append writes entry as one JSON line, creating the containing directory
// if needed. Failures are logged, never returned: provenance is best-effort
// and correctness of the edit it describes must not depend on it (§4.6).
func (l *Ledger) Append(entry Entry) {
	if err := l.append(entry); err != nil {
		l.diag.Errorf("trace ledger: append failed: %v", err)
	}
}

func (l *Ledger) append(entry Entry) error {
	dir := filepath.Dir(l.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create ledger dir: %w", err)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal trace entry: %w", err)
	}

	f, err := os.OpenFile(l.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write ledger line: %w", err)
	}
	return f.Sync()
}

// Graph is a read-only, in-memory view of a trace ledger used for querying
// (trace show/stat). It never rewrites the ledger.
type Graph struct {
	Entries []Entry
}

// LoadGraph reads every well-formed line of the ledger at path. A missing
// file yields an empty graph. Malformed lines are skipped, matching the
// ledger's "never block on a single bad line" read contract.
func LoadGraph(path string) (*Graph, error) {
	g := &Graph{}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return g, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue
		}
		g.Entries = append(g.Entries, e)
	}
	return g, scanner.Err()
}

// Trace returns every entry touching relativePath, matching first on exact
// relative path and falling back to basename if nothing matched — mirroring
// how a renamed-on-disk artifact can still be traced by its last known name.
func (g *Graph) Trace(relativePath string) []Entry {
	var matches []Entry
	for _, e := range g.Entries {
		for _, f := range e.Files {
			if f.RelativePath == relativePath {
				matches = append(matches, e)
				break
			}
		}
	}
	if len(matches) > 0 {
		return matches
	}

	base := filepath.Base(relativePath)
	for _, e := range g.Entries {
		for _, f := range e.Files {
			if filepath.Base(f.RelativePath) == base {
				matches = append(matches, e)
				break
			}
		}
	}
	return matches
}

// FindBySession returns every entry carrying a conversation whose URL (the
// task-id proxy) equals sessionID.
func (g *Graph) FindBySession(sessionID string) []Entry {
	var matches []Entry
	for _, e := range g.Entries {
		for _, f := range e.Files {
			for _, c := range f.Conversations {
				if c.URL == sessionID {
					matches = append(matches, e)
					goto next
				}
			}
		}
	next:
	}
	return matches
}

// FindByIntent returns every entry tagging relatedIntentID via a
// "specification" related entry — the active intent the write was made
// under.
func (g *Graph) FindByIntent(relatedIntentID string) []Entry {
	var matches []Entry
	for _, e := range g.Entries {
		for _, f := range e.Files {
			for _, c := range f.Conversations {
				for _, r := range c.Related {
					if r.Type == "specification" && r.Value == relatedIntentID {
						matches = append(matches, e)
						goto next
					}
				}
			}
		}
	next:
	}
	return matches
}

// Stats summarizes a Graph for "igk trace stat".
type Stats struct {
	TotalEntries    int            `json:"total_entries"`
	MutationClasses map[string]int `json:"mutation_classes"`
	UniqueFiles     int            `json:"unique_files"`
	UniqueIntents   int            `json:"unique_intents"`
}

// GetStats computes aggregate counts across the whole graph.
func (g *Graph) GetStats() Stats {
	s := Stats{TotalEntries: len(g.Entries), MutationClasses: make(map[string]int)}

	files := make(map[string]bool)
	intents := make(map[string]bool)
	for _, e := range g.Entries {
		for _, f := range e.Files {
			files[f.RelativePath] = true
			for _, c := range f.Conversations {
				for _, r := range c.Ranges {
					s.MutationClasses[r.MutationClass]++
				}
				for _, r := range c.Related {
					if r.Type == "specification" {
						intents[r.Value] = true
					}
				}
			}
		}
	}
	s.UniqueFiles = len(files)
	s.UniqueIntents = len(intents)
	return s
}
