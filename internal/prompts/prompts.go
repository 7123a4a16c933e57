package prompts

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed text/*
var builtinFS embed.FS

// Name identifies a builtin prompt.
type Name string

const (
	PromptChangelog Name = "changelog"
)

var builtinFiles = map[Name]string{
	PromptChangelog: "text/changelog_prompt.md",
}

var builtinPrompts = func() map[Name]string {
	out := make(map[Name]string, len(builtinFiles))
	for name, path := range builtinFiles {
		data, err := builtinFS.ReadFile(path)
		if err != nil {
			panic(fmt.Sprintf("load builtin prompt %q from %s: %v", name, path, err))
		}
		out[name] = strings.TrimSpace(string(data))
	}
	return out
}()

// Builtin returns the builtin prompt text for a name.
func Builtin(name Name) (string, bool) {
	text, ok := builtinPrompts[name]
	return text, ok
}

// Changelog returns the system prompt used for changelog generation.
func Changelog() string {
	text, _ := Builtin(PromptChangelog)
	return text
}
