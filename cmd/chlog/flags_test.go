package main

import (
	"io"
	"testing"
)

func TestParseArgs_Defaults(t *testing.T) {
	cli, err := parseArgs("chlog", nil, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if cli.revRange != "" {
		t.Fatalf("revRange = %q, want empty (entire history)", cli.revRange)
	}
	if cli.short {
		t.Fatalf("short should default to false")
	}
	if cli.temperature != 0.2 {
		t.Fatalf("temperature = %v, want 0.2", cli.temperature)
	}
	if cli.frequencyPenalty != 0 {
		t.Fatalf("frequencyPenalty = %v, want 0", cli.frequencyPenalty)
	}
}

func TestParseArgs_Full(t *testing.T) {
	cli, err := parseArgs("chlog", []string{
		"-short",
		"-model", "gpt-4.1",
		"-temperature", "0.7",
		"-frequency-penalty", "0.3",
		"-c", "url=https://proxy.test/v1",
		"-c", "token=t",
		"v1.0.0..v1.1.0",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if !cli.short {
		t.Fatalf("short not set")
	}
	if cli.model != "gpt-4.1" {
		t.Fatalf("model = %q", cli.model)
	}
	if cli.temperature != 0.7 {
		t.Fatalf("temperature = %v", cli.temperature)
	}
	if cli.frequencyPenalty != 0.3 {
		t.Fatalf("frequencyPenalty = %v", cli.frequencyPenalty)
	}
	if got := len(cli.configOverrides); got != 2 {
		t.Fatalf("configOverrides = %v", cli.configOverrides)
	}
	if cli.revRange != "v1.0.0..v1.1.0" {
		t.Fatalf("revRange = %q", cli.revRange)
	}
}

func TestParseArgs_ShortAliases(t *testing.T) {
	cli, err := parseArgs("chlog", []string{"-s", "-m", "o4-mini", "-t", "0.5", "-f", "0.1"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if !cli.short || cli.model != "o4-mini" || cli.temperature != 0.5 || cli.frequencyPenalty != 0.1 {
		t.Fatalf("aliases not applied: %+v", cli)
	}
}

func TestParseArgs_TooManyPositionals(t *testing.T) {
	if _, err := parseArgs("chlog", []string{"a..b", "c..d"}, io.Discard); err == nil {
		t.Fatalf("two positionals should be rejected")
	}
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	if _, err := parseArgs("chlog", []string{"-bogus"}, io.Discard); err == nil {
		t.Fatalf("unknown flag should be rejected")
	}
}
