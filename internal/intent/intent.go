// Package intent implements the Intent Store: a YAML-backed registry
// of the Intents a task session may select as its active scope. Writes are
// atomic (temp file + rename, mirroring the kernel's storage convention) and
// round-trip unrecognized keys a human added to the registry by hand.
package intent

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/intentguard/igk/internal/session"
)

// RegistryFile is the conventional path, relative to the workspace root,
// of the active intents registry.
const RegistryFile = ".orchestration/active_intents.yaml"

// registryDocument is the top-level shape of the registry file: a mapping
// with key active_intents to an ordered sequence of intent mappings (§6).
type registryDocument struct {
	ActiveIntents []session.Intent `yaml:"active_intents"`
}

// Store is an in-memory view of a registry file, with a mutex guarding
// reads and writes against the single cooperative task session using it.
type Store struct {
	path string
	mu   sync.Mutex
	doc  registryDocument
}

// Load reads and parses the registry at path. A missing file is not an
// error: it is treated as an empty registry, matching the kernel's
// fail-open convention for optional project files.
func Load(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading intent registry: %w", err)
	}

	if err := yaml.Unmarshal(data, &s.doc); err != nil {
		return nil, fmt.Errorf("parsing intent registry %s: %w", path, err)
	}
	return s, nil
}

// Find returns the intent with the given id, if present.
func (s *Store) Find(id string) (session.Intent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, in := range s.doc.ActiveIntents {
		if in.ID == id {
			return in, true
		}
	}
	return session.Intent{}, false
}

// All returns every intent currently in the registry.
func (s *Store) All() []session.Intent {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]session.Intent, len(s.doc.ActiveIntents))
	copy(out, s.doc.ActiveIntents)
	return out
}

// SetStatus advances the status of the intent with the given id and
// persists the registry. It is a no-op write (no file touched) when the
// status is already the requested value, so a redundant intent_update hook
// call does not generate a spurious disk write or content-hash churn.
func (s *Store) SetStatus(id string, newStatus session.IntentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.ActiveIntents {
		if s.doc.ActiveIntents[i].ID != id {
			continue
		}
		if s.doc.ActiveIntents[i].Status == newStatus {
			return nil
		}
		s.doc.ActiveIntents[i].Status = newStatus
		return s.save()
	}
	return fmt.Errorf("intent %q not found in registry", id)
}

// save writes the registry atomically: write to a temp file in the same
// directory, then rename over the target, so a crash mid-write never leaves
// a truncated or corrupt registry on disk.
func (s *Store) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create registry dir: %w", err)
	}

	data, err := yaml.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("marshal intent registry: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-active_intents-")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write registry: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync registry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("rename registry into place: %w", err)
	}

	success = true
	return nil
}
