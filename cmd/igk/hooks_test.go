package main

import "testing"

func TestGroupIsIGKManaged(t *testing.T) {
	managed := HookGroup{Matcher: "*", Hooks: []HookEntry{{Type: "command", Command: "igk invoke"}}}
	other := HookGroup{Matcher: "*", Hooks: []HookEntry{{Type: "command", Command: "some-other-tool"}}}

	if !groupIsIGKManaged(managed) {
		t.Error("expected a group running igk invoke to be recognized as igk-managed")
	}
	if groupIsIGKManaged(other) {
		t.Error("expected a group running an unrelated command not to be recognized as igk-managed")
	}
}

func TestMergeHookGroupsReplacesIGKManagedGroups(t *testing.T) {
	existing := []HookGroup{
		{Matcher: "*", Hooks: []HookEntry{{Type: "command", Command: "igk invoke", Timeout: 10}}},
		{Matcher: "Bash", Hooks: []HookEntry{{Type: "command", Command: "my-custom-linter"}}},
	}
	generated := []HookGroup{
		{Matcher: "*", Hooks: []HookEntry{{Type: "command", Command: "igk invoke", Timeout: 30}}},
	}

	merged := mergeHookGroups(existing, generated, false)
	if len(merged) != 2 {
		t.Fatalf("expected the custom group to survive alongside the regenerated one, got %d groups", len(merged))
	}

	var sawCustom, sawFreshIGK bool
	for _, g := range merged {
		if g.Matcher == "Bash" {
			sawCustom = true
		}
		if g.Matcher == "*" && len(g.Hooks) == 1 && g.Hooks[0].Timeout == 30 {
			sawFreshIGK = true
		}
	}
	if !sawCustom {
		t.Error("expected the non-igk custom group to be preserved")
	}
	if !sawFreshIGK {
		t.Error("expected the stale igk group to be replaced by the freshly generated one")
	}
}

func TestMergeHookGroupsForceDropsCollidingMatcher(t *testing.T) {
	existing := []HookGroup{
		{Matcher: "*", Hooks: []HookEntry{{Type: "command", Command: "some-other-wildcard-hook"}}},
	}
	generated := []HookGroup{
		{Matcher: "*", Hooks: []HookEntry{{Type: "command", Command: "igk invoke"}}},
	}

	withoutForce := mergeHookGroups(existing, generated, false)
	if len(withoutForce) != 2 {
		t.Fatalf("without force, expected both wildcard groups to coexist, got %d", len(withoutForce))
	}

	withForce := mergeHookGroups(existing, generated, true)
	if len(withForce) != 1 {
		t.Fatalf("with force, expected the colliding non-igk wildcard group to be dropped, got %d", len(withForce))
	}
}

func TestGenerateHooksConfigFromEmbeddedManifest(t *testing.T) {
	cfg := generateHooksConfig()
	if len(cfg.PreToolUse) == 0 || len(cfg.PostToolUse) == 0 {
		t.Fatal("expected the embedded manifest to populate both PreToolUse and PostToolUse")
	}
	if !groupIsIGKManaged(cfg.PreToolUse[0]) {
		t.Error("expected the embedded manifest's PreToolUse group to be igk-managed")
	}
}
