package hash

import "testing"

func TestHashDeterministic(t *testing.T) {
	const text = "package main\n\nfunc main() {}\n"
	if Hash(text) != Hash(text) {
		t.Fatal("Hash is not deterministic for identical input")
	}
}

func TestHashDistinctInputs(t *testing.T) {
	a := Hash("alpha")
	b := Hash("beta")
	if a == b {
		t.Fatalf("distinct inputs produced the same hash: %s", a)
	}
}

func TestHashCanonicalForm(t *testing.T) {
	cases := []string{"", "x", "hello world", "line one\nline two\n"}
	for _, c := range cases {
		got := Hash(c)
		if !Pattern.MatchString(got) {
			t.Errorf("Hash(%q) = %q, does not match canonical pattern", c, got)
		}
		if len(got) != len(Prefix)+64 {
			t.Errorf("Hash(%q) = %q, unexpected length %d", c, got, len(got))
		}
	}
}

func TestHashLines(t *testing.T) {
	lines := []string{"a", "b", "c"}
	if HashLines(lines) != Hash("a\nb\nc") {
		t.Error("HashLines did not join with newline before hashing")
	}
}

func TestVerify(t *testing.T) {
	text := "stable content"
	if !Verify(text, Hash(text)) {
		t.Error("Verify should succeed for matching content")
	}
	if Verify(text, Hash("other content")) {
		t.Error("Verify should fail for mismatched content")
	}
}

func TestValid(t *testing.T) {
	if !Valid(Hash("anything")) {
		t.Error("Valid should accept a freshly computed hash")
	}
	invalid := []string{
		"",
		"sha256:short",
		"md5:d41d8cd98f00b204e9800998ecf8427e",
		"sha256:" + string(make([]byte, 64)), // NUL bytes, not hex
	}
	for _, s := range invalid {
		if Valid(s) {
			t.Errorf("Valid(%q) = true, want false", s)
		}
	}
}
