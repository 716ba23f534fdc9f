package hooks

import (
	"path/filepath"

	"github.com/intentguard/igk/internal/diag"
	"github.com/intentguard/igk/internal/engine"
	"github.com/intentguard/igk/internal/intent"
	"github.com/intentguard/igk/internal/trace"
)

// Pipeline is the wired-up canonical hook chain plus the stores its
// hooks hold onto, returned together so a caller (cmd/igk invoke, or a
// future long-lived host) can reuse the same Intents/Ledger instances for
// its own commands without reopening the registry files.
type Pipeline struct {
	Engine  *engine.Engine
	Intents *intent.Store
	Ledger  *trace.Ledger
	Auth    *Authorization
}

// NewDefaultEngine loads the intent registry at root and wires the
// canonical pre/post pipeline: Gatekeeper, OptimisticLock,
// ScopeEnforcement, Authorization as pre-hooks,
// then IntentUpdate and TraceWriter as post-hooks. A nil sink falls back to
// diag.Default().
func NewDefaultEngine(root string, approver Approver, sink diag.Sink) (*Pipeline, error) {
	if sink == nil {
		sink = diag.Default()
	}

	store, err := intent.Load(filepath.Join(root, intent.RegistryFile))
	if err != nil {
		return nil, err
	}
	ledger := trace.New(filepath.Join(root, trace.LedgerFile), sink)
	auth := &Authorization{Root: root, Approver: approver}

	e := engine.New(sink)
	e.Register(Gatekeeper{})
	e.Register(OptimisticLock{Root: root})
	e.Register(ScopeEnforcement{Root: root, Intents: store})
	e.Register(auth)
	e.Register(IntentUpdate{Intents: store, Diag: sink})
	e.Register(TraceWriter{Root: root, Intents: store, Ledger: ledger})

	return &Pipeline{Engine: e, Intents: store, Ledger: ledger, Auth: auth}, nil
}
