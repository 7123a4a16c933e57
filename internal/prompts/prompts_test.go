package prompts

import (
	"strings"
	"testing"
)

func TestBuiltin_Changelog(t *testing.T) {
	text, ok := Builtin(PromptChangelog)
	if !ok {
		t.Fatalf("changelog prompt missing")
	}
	if strings.TrimSpace(text) == "" {
		t.Fatalf("changelog prompt is empty")
	}
	if text != strings.TrimSpace(text) {
		t.Fatalf("prompt should be trimmed")
	}
	if !strings.Contains(text, "git log") {
		t.Fatalf("prompt should describe the git log input")
	}
}

func TestBuiltin_Unknown(t *testing.T) {
	if _, ok := Builtin(Name("nope")); ok {
		t.Fatalf("unknown prompt should not resolve")
	}
}

func TestChangelog_MatchesBuiltin(t *testing.T) {
	want, _ := Builtin(PromptChangelog)
	if got := Changelog(); got != want {
		t.Fatalf("Changelog() diverges from Builtin()")
	}
}
