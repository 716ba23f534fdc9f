// Package classify implements the Command Classifier (tagging tool names
// SAFE / DESTRUCTIVE / UNKNOWN) and the Mutation Classifier (labeling a
// write as AST_REFACTOR or INTENT_EVOLUTION). Both are pure, static
// lookups/heuristics with no filesystem or network access.
package classify

import (
	"encoding/json"

	"github.com/intentguard/igk/internal/session"
)

// Class is the disjoint tag a tool name is assigned.
type Class string

const (
	Safe        Class = "SAFE"
	Destructive Class = "DESTRUCTIVE"
	Unknown     Class = "UNKNOWN"
)

// SafeTools are read/list/search-style tools and session-control tools that
// never produce a side effect external to the agent session.
var SafeTools = map[string]bool{
	"read_file":               true,
	"list_files":               true,
	"search_files":             true,
	"codebase_search":          true,
	"ask_followup_question":    true,
	"attempt_completion":       true,
	"read_command_output":      true,
	"select_active_intent":     true,
	"update_todo_list":         true,
}

// DestructiveTools write, execute, invoke MCP tools, create tasks, generate
// images, or otherwise produce side effects outside the agent session.
var DestructiveTools = map[string]bool{
	"write_to_file":       true,
	"apply_diff":          true,
	"edit":                true,
	"search_and_replace":  true,
	"search_replace":      true,
	"edit_file":           true,
	"apply_patch":         true,
	"execute_command":     true,
	"use_mcp_tool":        true,
	"access_mcp_resource": true,
	"switch_mode":         true,
	"new_task":            true,
	"generate_image":      true,
	"run_slash_command":   true,
	"skill":               true,
}

// Classify returns the class for a tool name. Anything not present in
// SafeTools or DestructiveTools is Unknown — by design this is not treated
// as Destructive anywhere in the pipeline (see Design Notes, "Open question:
// UNKNOWN tools"); a stricter policy is a deliberate future decision, not an
// oversight.
func Classify(tool string) Class {
	if SafeTools[tool] {
		return Safe
	}
	if DestructiveTools[tool] {
		return Destructive
	}
	return Unknown
}

// IsSideEffecting reports whether tool is one of the write/execute/MCP/mode
// tools the Gatekeeper Hook (C8) gates on. This is a slightly broader set
// than "write tools" (C9/C10/C13 gate on WriteTools) since it also includes
// browser_action and insert_content, which the gatekeeper must see even
// though they're absent from the DESTRUCTIVE taxonomy used elsewhere.
var gatekeeperTools = map[string]bool{
	"write_to_file":      true,
	"apply_diff":         true,
	"execute_command":    true,
	"insert_content":     true,
	"search_and_replace": true,
	"browser_action":     true,
	"use_mcp_tool":       true,
	"switch_mode":        true,
	"new_task":           true,
}

// IsSideEffecting reports whether the Gatekeeper Hook must see an active
// intent before tool is allowed to run.
func IsSideEffecting(tool string) bool {
	return gatekeeperTools[tool]
}

// WriteTools are the tools the Optimistic Lock, Scope Enforcement, and
// Trace Writer hooks apply to: anything that writes file content.
var WriteTools = map[string]bool{
	"write_to_file":      true,
	"apply_diff":         true,
	"edit":               true,
	"search_and_replace": true,
	"search_replace":     true,
	"edit_file":          true,
	"apply_patch":        true,
	"insert_content":     true,
}

// IsWriteTool reports whether tool writes file content.
func IsWriteTool(tool string) bool {
	return WriteTools[tool]
}

// defaultRecoveryHints gives each known code a sensible default hint when
// the caller does not supply one.
var defaultRecoveryHints = map[string]string{
	session.CodeUserRejectedIntentEvolution: "Ask the human to approve this action, or select an intent present in .intentignore to bypass approval.",
	session.CodeScopeViolation:              "Select an intent whose owned_scope covers this path, or widen the active intent's owned_scope.",
	session.CodeStaleFile:                   "Re-read the file to obtain its current content hash, then retry with that hash as expected_hash.",
}

// BuildRejectionError constructs the structured payload returned to the LLM
// by a blocking pre-hook. When hint is empty, a default is chosen from code;
// an unrecognized code falls back to a generic hint rather than an empty
// string, since the payload's contract is that recovery_hint is always
// actionable text.
func BuildRejectionError(tool, code, message, hint string, intentID *string) session.RejectionError {
	if hint == "" {
		if d, ok := defaultRecoveryHints[code]; ok {
			hint = d
		} else {
			hint = "Review the message and adjust the tool call accordingly, then retry."
		}
	}
	return session.RejectionError{
		Error:        "TOOL_REJECTED",
		Code:         code,
		Tool:         tool,
		IntentID:     intentID,
		Message:      message,
		RecoveryHint: hint,
	}
}

// MarshalIndented serializes a RejectionError as pretty-printed JSON with a
// 2-space indent, the exact wire shape specified in §6, so it flows back to
// the LLM as a self-describing signal.
func MarshalIndented(r session.RejectionError) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
