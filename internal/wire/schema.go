// Package wire validates the JSON envelopes crossing the igk invoke CLI
// boundary against jsonschema/v5, catching a malformed ToolInvocation or
// RejectionError before it reaches (or leaves) the hook pipeline.
package wire

import (
	"bytes"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/intentguard/igk/internal/hash"
)

// invocationSchemaDoc describes the wire shape igk invoke reads from stdin:
// a tool name plus either (or both) of params/native_args.
const invocationSchemaDoc = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["id", "tool"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"tool": {"type": "string", "minLength": 1},
		"params": {"type": "object"},
		"native_args": {"type": "object"}
	}
}`

// rejectionSchemaDoc describes the session.RejectionError wire shape (§3,
// §6): every blocked decision must serialize to this shape so a host can
// validate it without a Go import of internal/session.
var rejectionSchemaDoc = fmt.Sprintf(`{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["error", "code", "tool", "message", "recovery_hint"],
	"properties": {
		"error": {"const": "TOOL_REJECTED"},
		"code": {"type": "string", "minLength": 1},
		"tool": {"type": "string", "minLength": 1},
		"intent_id": {"type": ["string", "null"]},
		"message": {"type": "string"},
		"recovery_hint": {"type": "string"},
		"content_hash": {"type": "string", "pattern": %q}
	}
}`, hash.Pattern.String())

var (
	invocationSchema = mustCompile("invocation.json", invocationSchemaDoc)
	rejectionSchema  = mustCompile("rejection.json", rejectionSchemaDoc)
)

func mustCompile(name, doc string) *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, bytes.NewReader([]byte(doc))); err != nil {
		panic(fmt.Sprintf("wire: invalid schema %s: %v", name, err))
	}
	s, err := c.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("wire: compile schema %s: %v", name, err))
	}
	return s
}

// ValidateInvocation checks decoded JSON (as produced by json.Unmarshal
// into interface{} or map[string]any) against the ToolInvocation envelope
// schema.
func ValidateInvocation(v any) error {
	if err := invocationSchema.Validate(v); err != nil {
		return fmt.Errorf("invalid tool invocation: %w", err)
	}
	return nil
}

// ValidateRejection checks decoded JSON against the RejectionError schema.
func ValidateRejection(v any) error {
	if err := rejectionSchema.Validate(v); err != nil {
		return fmt.Errorf("invalid rejection payload: %w", err)
	}
	return nil
}
