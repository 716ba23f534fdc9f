// Package safety documents the threat model behind the kernel's hook
// pipeline. It carries no executable code of its own — every mitigation it
// describes lives in internal/hooks, internal/engine, internal/scope, and
// internal/intent; this file exists so the threat model travels with the
// module instead of living only in design notes.
//
// # Threat Model
//
// T1 - Unauthorized Autonomous Action: an agent with no active intent
// attempts a side-effecting tool (shell exec, git push, file delete) with no
// human-reviewed scope backing it. Mitigated by the Gatekeeper Hook, which
// blocks every side-effecting tool call when TaskSession.ActiveIntentID is
// empty, independent of the other hooks.
//
// T2 - Lost-Update Races: two agents (or an agent and a human) read a file,
// and the second write silently clobbers the first agent's edits because
// neither write observed the other. Mitigated by the Optimistic Lock Hook's
// content-hash CAS check on every write-tool call that supplies an expected
// hash, rejecting with STALE_FILE rather than allowing a blind overwrite.
//
// T3 - Scope Creep: an agent operating under an intent scoped to one
// subsystem edits files outside that scope, either by mistake or because the
// task description was ambiguous. Mitigated by the Scope Enforcement Hook's
// glob/prefix matching against the active intent's declared scope, with an
// explicit SCOPE_VIOLATION rejection rather than a silent pass-through.
//
// T4 - Unreviewed Intent Evolution: a change that the Mutation Classifier
// judges to be an architectural or requirements shift (not a mechanical
// refactor) proceeds without the human ever seeing it. Mitigated by the
// Authorization Hook's approval gate, with a narrow, file-based bypass list
// (.intentignore) for genuinely low-risk paths rather than a global
// disable switch.
//
// T5 - Stale Bypass-List Reads: the Authorization Hook caches
// .intentignore in memory for performance; if the cache never invalidates,
// an operator editing that file to tighten or loosen the bypass list has no
// effect until restart. Mitigated by watching the file's containing
// directory with fsnotify and invalidating the single-slot cache on any
// write/create/remove/rename event that touches it.
//
// T6 - Silent Provenance Gaps: a write succeeds but its trace entry is
// never recorded, because disk is full, the ledger directory was deleted
// underneath the process, or some other best-effort failure occurs.
// Mitigated by treating trace writes as strictly best-effort (never
// propagated as tool errors per §4.6) while still surfacing the failure
// through internal/diag so it is visible to whoever is watching kernel
// diagnostics, rather than disappearing entirely.
//
// T7 - Panic in One Post-Hook Poisoning the Rest: IntentUpdate and
// TraceWriter both run as post-hooks after every tool call; a bug in one
// must not prevent the other from running, since a dropped intent-status
// transition and a dropped trace entry are independent failures with
// independent blast radii. Mitigated by the Hook Engine recovering panics
// per post-hook in RunPost rather than letting one propagate through the
// loop.
//
// # Design Principles
//
// Fail closed on missing context: the Gatekeeper Hook and the Scope
// Enforcement Hook both treat "no active intent" or "no declared scope" as
// a block or a pass respectively per their own documented edge cases (§4.8,
// §4.10) — never as an excuse to skip the check.
//
// Fail open on provenance: a trace write or an intent-status persist
// failure degrades observability, not correctness of the edit it describes,
// so neither ever blocks the tool call that triggered it.
//
// Rejection is structured, not a bare string: every block surfaces through
// session.RejectionError, carrying a machine-checkable code so a host UI or
// test can distinguish STALE_FILE from SCOPE_VIOLATION without parsing
// prose.
package safety
