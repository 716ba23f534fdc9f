// Package hash provides the canonical content-addressed digest used to link
// code regions to the intents responsible for them. It never normalizes
// input: byte-for-byte equality is the contract, so downstream comparisons
// (the optimistic lock, trace ranges) are total and cheap.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

// Prefix is prepended to every digest to make the canonical form
// self-describing (future algorithms get their own prefix, never this one).
const Prefix = "sha256:"

// Pattern matches the canonical form: "sha256:" followed by 64 lowercase
// hex characters. Exposed for reuse by validators (e.g. jsonschema patterns
// on content_hash fields) and tests elsewhere in the module.
var Pattern = regexp.MustCompile(`^sha256:[0-9a-f]{64}$`)

// Hash returns the canonical digest of text. UTF-8 bytes are hashed as-is;
// no normalization (trimming, case-folding, line-ending conversion) is
// performed.
func Hash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return Prefix + hex.EncodeToString(sum[:])
}

// HashLines joins lines with "\n" and defers to Hash. It does not append a
// trailing newline, matching the convention that callers already decide
// whether their content ends with one.
func HashLines(lines []string) string {
	return Hash(strings.Join(lines, "\n"))
}

// Verify reports whether text hashes to expected. It is a thin equality
// check provided so callers never have to remember to call Hash themselves
// before comparing.
func Verify(text, expected string) bool {
	return Hash(text) == expected
}

// Valid reports whether s is a syntactically well-formed canonical digest.
// It does not verify that s is the digest of any particular content.
func Valid(s string) bool {
	return Pattern.MatchString(s)
}
