// Package embedded carries the canonical Claude Code hooks manifest inside
// the igk binary, so "igk hooks init" and "igk hooks install" have a
// default to fall back to when no project- or home-level override exists.
package embedded

import _ "embed"

// HooksJSON is the raw default hooks manifest: PreToolUse/PostToolUse
// groups whose commands shell out to "igk invoke".
//
//go:embed hooks.json
var HooksJSON []byte
