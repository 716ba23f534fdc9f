package classify

import "testing"

func TestParseMutationClass(t *testing.T) {
	if cls, ok := ParseMutationClass("AST_REFACTOR"); !ok || cls != ASTRefactor {
		t.Errorf("ParseMutationClass(AST_REFACTOR) = %v, %v", cls, ok)
	}
	if _, ok := ParseMutationClass("bogus"); ok {
		t.Error("ParseMutationClass(bogus) should not be recognized")
	}
}

func TestClassifyMutationExplicitOverride(t *testing.T) {
	got := ClassifyMutation("AST_REFACTOR", "func newThing() {}", false)
	if got != ASTRefactor {
		t.Errorf("explicit override ignored: got %q", got)
	}
}

func TestClassifyMutationNewFile(t *testing.T) {
	got := ClassifyMutation("", "   ", true)
	if got != IntentEvolution {
		t.Errorf("new file should always be INTENT_EVOLUTION, got %q", got)
	}
}

func TestClassifyMutationEvolutionSignal(t *testing.T) {
	content := "func helperTwo(x int) int {\n\treturn x\n}\n"
	got := ClassifyMutation("", content, false)
	if got != IntentEvolution {
		t.Errorf("new function definition should be INTENT_EVOLUTION, got %q", got)
	}
}

func TestClassifyMutationRefactorSignal(t *testing.T) {
	content := "-import \"old/pkg\"\n+import \"new/pkg\"\n+\n-\n"
	got := ClassifyMutation("", content, false)
	if got != ASTRefactor {
		t.Errorf("two distinct refactor signals should be AST_REFACTOR, got %q", got)
	}
}

func TestClassifyMutationSingleRefactorSignalDefaultsToEvolution(t *testing.T) {
	content := "+import \"new/pkg\"\n"
	got := ClassifyMutation("", content, false)
	if got != IntentEvolution {
		t.Errorf("a single refactor signal should not be enough for AST_REFACTOR, got %q", got)
	}
}

func TestClassifyMutationDefault(t *testing.T) {
	content := "some ordinary line with nothing distinctive about it"
	got := ClassifyMutation("", content, false)
	if got != IntentEvolution {
		t.Errorf("default should be INTENT_EVOLUTION, got %q", got)
	}
}
