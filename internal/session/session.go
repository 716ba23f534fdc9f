// Package session defines the data model shared across the hook pipeline:
// the intent a unit of work is scoped to, the per-conversation task carrying
// it, and the tool call being evaluated. Every hook package depends on these
// types instead of defining its own, so the pre/post pipeline can pass a
// single ToolInvocation through C8 through C13 without adapters.
package session

// IntentStatus is the lifecycle state of an Intent.
type IntentStatus string

const (
	StatusTODO       IntentStatus = "TODO"
	StatusInProgress IntentStatus = "IN_PROGRESS"
	StatusCompleted  IntentStatus = "COMPLETED"
)

// Intent is a declared business objective that scopes a block of agent work.
// IntentId is unique within the registry; the kernel never deletes an
// Intent, only advances its Status.
type Intent struct {
	ID                 string       `yaml:"id" json:"id"`
	Name               string       `yaml:"name" json:"name"`
	Status             IntentStatus `yaml:"status" json:"status"`
	Constraints        []string     `yaml:"constraints,omitempty" json:"constraints,omitempty"`
	OwnedScope         []string     `yaml:"owned_scope,omitempty" json:"owned_scope,omitempty"`
	AcceptanceCriteria []string     `yaml:"acceptance_criteria,omitempty" json:"acceptance_criteria,omitempty"`

	// Extra preserves unrecognized keys so the store can round-trip them
	// without a reader/writer version needing to know every field a human
	// might have added to the registry by hand.
	Extra map[string]any `yaml:",inline" json:"-"`
}

// ModelDescriptor is metadata about the LLM driving the session, carried
// only for attribution on trace entries — the kernel never inspects it.
type ModelDescriptor struct {
	EntityType     string `json:"entity_type"`
	ModelIdentifier string `json:"model_identifier"`
}

// TaskSession is the per-conversation scope carried through every hook call.
// Once ActiveIntentID is set, it may only change via explicit re-selection
// (select_active_intent), never as a side effect of some other tool call.
type TaskSession struct {
	TaskID          string
	ActiveIntentID  string
	Model           ModelDescriptor
	MutationCount   int
}

// ToolInvocation is a tool call parsed by the driver and handed to the Hook
// Engine. It is treated as immutable by convention: a pre-hook that needs to
// change what downstream hooks and the tool itself see returns a
// transformed replacement rather than mutating this value in place.
type ToolInvocation struct {
	ID         string
	Tool       string
	Params     map[string]string
	NativeArgs map[string]any
}

// Param returns a parameter, preferring NativeArgs over Params when both are
// present — NativeArgs is the typed, preferred source of truth per the data
// model (spec §3 ToolInvocation).
func (t ToolInvocation) Param(key string) (string, bool) {
	if t.NativeArgs != nil {
		if v, ok := t.NativeArgs[key]; ok {
			if s, ok := v.(string); ok {
				return s, true
			}
		}
	}
	if t.Params != nil {
		if v, ok := t.Params[key]; ok {
			return v, true
		}
	}
	return "", false
}

// Path extracts the target file path from whichever of "path"/"file_path"
// the tool call used.
func (t ToolInvocation) Path() (string, bool) {
	if v, ok := t.Param("path"); ok {
		return v, true
	}
	return t.Param("file_path")
}

// RejectionError is the structured, self-describing payload a policy
// rejection (Authorization, Scope, OptimisticLock) returns to the LLM. It
// is always serialized as indented JSON (§3, §6) so the payload is legible
// to the model without a schema lookup. The Gatekeeper's governance block
// is a distinct, plain-text channel (§7) and never constructs one of these
// — see engine.BlockedPlainText.
type RejectionError struct {
	Error        string  `json:"error"`
	Code         string  `json:"code"`
	Tool         string  `json:"tool"`
	IntentID     *string `json:"intent_id"`
	Message      string  `json:"message"`
	RecoveryHint string  `json:"recovery_hint"`
}

// Known rejection codes (§6). New hooks may introduce additional codes;
// unknown codes are permitted by the wire contract. The Gatekeeper Hook has
// no code here — its block is a plain-text governance message, not a
// RejectionError (§7).
const (
	CodeUserRejectedIntentEvolution = "USER_REJECTED_INTENT_EVOLUTION"
	CodeScopeViolation              = "SCOPE_VIOLATION"
	CodeStaleFile                   = "STALE_FILE"
)
