package classify

import "regexp"

// MutationClass distinguishes behavior-preserving refactors from changes
// that introduce or alter behavior.
type MutationClass string

const (
	ASTRefactor     MutationClass = "AST_REFACTOR"
	IntentEvolution MutationClass = "INTENT_EVOLUTION"
)

// ParseMutationClass normalizes a caller-supplied explicit class string. It
// returns ("", false) for anything other than the two recognized values, so
// callers can distinguish "no explicit override" from a malformed one and
// fall through to the heuristic either way.
func ParseMutationClass(explicit string) (MutationClass, bool) {
	switch MutationClass(explicit) {
	case ASTRefactor:
		return ASTRefactor, true
	case IntentEvolution:
		return IntentEvolution, true
	}
	return "", false
}

// evolutionSignals match content that introduces new behavior: new
// function/method definitions, new class/interface declarations, new
// exported values, new route/handler registrations, and new inline
// conditionals guarding additions.
var evolutionSignals = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*\+?\s*(func|def|fn)\s+\w+\s*\(`),
	regexp.MustCompile(`(?m)^\s*\+?\s*(class|interface|type)\s+\w+`),
	regexp.MustCompile(`(?m)^\s*\+?\s*export\s+(const|function|class|interface|type)\s+\w+`),
	regexp.MustCompile(`(?i)(app|router)\.(get|post|put|delete|patch|use)\s*\(`),
	regexp.MustCompile(`(?m)^\s*\+\s*if\s*\(.*\)\s*\{`),
}

// refactorSignals match content that preserves behavior: renamed-only
// declaration lines, whitespace-only lines, import-line changes, and
// comment-only changes. Two or more DISTINCT signals (i.e. matches from two
// or more different regexps) are required to classify as AST_REFACTOR —
// a single repeated signal is not enough, since e.g. many whitespace-only
// lines alone says little about whether behavior changed elsewhere in the
// same diff.
var refactorSignals = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*[-+]\s*(import|from)\s+`),
	regexp.MustCompile(`(?m)^\s*[-+]\s*$`),
	regexp.MustCompile(`(?m)^\s*[-+]\s*(//|#|/\*|\*).*$`),
	regexp.MustCompile(`(?m)^\s*[-+]\s*\w+\s*(:=|=)\s*\w+\s*$`), // bare rename-only assignment
}

// countDistinctMatches returns how many of the given regexps match content
// at least once.
func countDistinctMatches(content string, patterns []*regexp.Regexp) int {
	n := 0
	for _, p := range patterns {
		if p.MatchString(content) {
			n++
		}
	}
	return n
}

// ClassifyMutation decides AST_REFACTOR vs INTENT_EVOLUTION following the
// priority ladder in spec §4.3:
//  1. explicit override wins
//  2. a new file is always INTENT_EVOLUTION
//  3. any evolution signal in content is INTENT_EVOLUTION
//  4. two or more distinct refactor signals with no evolution signal is AST_REFACTOR
//  5. otherwise, the conservative default is INTENT_EVOLUTION
func ClassifyMutation(explicit, content string, isNewFile bool) MutationClass {
	if cls, ok := ParseMutationClass(explicit); ok {
		return cls
	}
	if isNewFile {
		return IntentEvolution
	}
	if countDistinctMatches(content, evolutionSignals) > 0 {
		return IntentEvolution
	}
	if countDistinctMatches(content, refactorSignals) >= 2 {
		return ASTRefactor
	}
	return IntentEvolution
}
