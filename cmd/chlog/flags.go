package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

type stringSlice []string

func (s *stringSlice) String() string {
	return strings.Join(*s, ",")
}

func (s *stringSlice) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type cliArgs struct {
	revRange         string
	short            bool
	model            string
	temperature      float64
	frequencyPenalty float64
	noSpinner        bool
	cfgPath          string
	configOverrides  stringSlice
}

func newFlagSet(name string) (*flag.FlagSet, *cliArgs) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cli := &cliArgs{}

	fs.BoolVar(&cli.short, "short", false, "Only use the first line of each commit message to reduce tokens")
	fs.BoolVar(&cli.short, "s", false, "Shorthand for -short")
	fs.StringVar(&cli.model, "model", "", "Model to use (default from config)")
	fs.StringVar(&cli.model, "m", "", "Shorthand for -model")
	fs.Float64Var(&cli.temperature, "temperature", 0.2, "Sampling temperature")
	fs.Float64Var(&cli.temperature, "t", 0.2, "Shorthand for -temperature")
	fs.Float64Var(&cli.frequencyPenalty, "frequency-penalty", 0, "Frequency penalty")
	fs.Float64Var(&cli.frequencyPenalty, "f", 0, "Shorthand for -frequency-penalty")
	fs.BoolVar(&cli.noSpinner, "no-spinner", false, "Disable the wait spinner")
	fs.StringVar(&cli.cfgPath, "config", "", "Config file path (default ~/.chlog/config.toml)")
	fs.Var(&cli.configOverrides, "c", "Override config value key=value (repeatable)")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [flags] [rev-range]\n\n", name)
		fmt.Fprintf(out, "Generate a changelog from a range of git commits.\n")
		fmt.Fprintf(out, "The rev range is passed to `git log` as-is (tag..tag, hash..HEAD, ...);\n")
		fmt.Fprintf(out, "omit it to summarize the entire history.\n\n")
		fmt.Fprintf(out, "Subcommands: login <api-key> | logout | version\n\nFlags:\n")
		fs.PrintDefaults()
	}
	return fs, cli
}

func parseArgs(name string, args []string, errOut io.Writer) (*cliArgs, error) {
	fs, cli := newFlagSet(name)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	rest := fs.Args()
	switch len(rest) {
	case 0:
	case 1:
		cli.revRange = strings.TrimSpace(rest[0])
	default:
		return nil, fmt.Errorf("expected at most one rev range, got %d arguments", len(rest))
	}
	return cli, nil
}
