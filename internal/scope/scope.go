// Package scope implements the glob-style matcher used to decide whether a
// file path falls inside an intent's owned_scope. Patterns are compiled to
// regexps once and cached, since the Scope Enforcement hook (C10) evaluates
// a match on every write-tool call.
package scope

import (
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

var compiledCache sync.Map // map[string]*regexp.Regexp

// Match reports whether path falls inside pattern. path matches if ANY of
// the following hold (the three are independent fallbacks, not a priority
// chain — a pattern failing one is still tried against the others):
//
//  1. Exact string equality.
//  2. The pattern compiled as a glob: "**" matches any number of path
//     segments (including none), "*" matches within a single segment, and
//     every other regexp metacharacter in the pattern is escaped literally.
//     The compiled regexp must match path in full.
//  3. The pattern, treated as a directory (a trailing "/" appended if it
//     doesn't already have one), is a prefix of path.
func Match(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if path == pattern {
		return true
	}
	if compile(pattern).MatchString(path) {
		return true
	}
	dirPattern := pattern
	if !strings.HasSuffix(dirPattern, "/") {
		dirPattern += "/"
	}
	return strings.HasPrefix(path, dirPattern)
}

// compile returns the cached compiled regexp for pattern, compiling and
// storing it on first use.
func compile(pattern string) *regexp.Regexp {
	if v, ok := compiledCache.Load(pattern); ok {
		return v.(*regexp.Regexp)
	}
	re := regexp.MustCompile("^" + globToRegexp(pattern) + "$")
	actual, _ := compiledCache.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp)
}

// globToRegexp translates a "**"/"*" glob into an equivalent regexp body,
// escaping every other metacharacter literally. "**" is replaced first so
// the subsequent "*" pass only ever sees single-star segments.
func globToRegexp(pattern string) string {
	const (
		doubleStarToken = "\x00DOUBLESTAR\x00"
		starToken       = "\x00STAR\x00"
	)
	tokenized := strings.ReplaceAll(pattern, "**", doubleStarToken)
	tokenized = strings.ReplaceAll(tokenized, "*", starToken)

	escaped := regexp.QuoteMeta(tokenized)

	escaped = strings.ReplaceAll(escaped, regexp.QuoteMeta(doubleStarToken), ".*")
	escaped = strings.ReplaceAll(escaped, regexp.QuoteMeta(starToken), "[^/]*")
	return escaped
}
