package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"chlog/internal/agent"
	openaimodel "chlog/internal/agent/openai"
	"chlog/internal/auth"
	"chlog/internal/config"
	"chlog/internal/gitlog"
	"chlog/internal/logger"
	"chlog/internal/prompts"
	"chlog/internal/term"
	"chlog/internal/tokens"
)

var log = logger.Named("cli")

// set via ldflags during release builds
var version = "dev"

func main() {
	logger.Configure()
	if logFile, _, err := logger.SetupFile(""); err != nil {
		log.Warnf("failed to initialize log file: %v", err)
	} else {
		defer logFile.Close()
	}

	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "login":
			loginMain(args[1:])
			return
		case "logout":
			logoutMain()
			return
		case "version":
			fmt.Println(version)
			return
		}
	}

	run(args)
}

func run(args []string) {
	cli, err := parseArgs("chlog", args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	cfg, err := config.Load(cli.cfgPath)
	if err != nil {
		fatalf("failed to load config: %v", err)
	}
	cfg = config.ApplyKVOverrides(cfg, cli.configOverrides)

	model := cfg.Model
	if cli.model != "" {
		model = cli.model
	}

	// credential check happens before anything touches the network
	key, err := auth.Resolve(cfg.Token)
	if err != nil {
		fatalf("%v", err)
	}

	ctx := context.Background()
	logText, err := gitlog.Collect(ctx, gitlog.ExecExecutor{}, gitlog.Options{
		Range: cli.revRange,
		Short: cli.short,
	})
	if err != nil {
		if errors.Is(err, gitlog.ErrEmptyRange) {
			fatalf("no commits found for %s", displayRange(cli.revRange))
		}
		fatalf("git log failed: %v", err)
	}

	system := prompts.Changelog()
	promptTokens := tokens.ApproxCount(system) + tokens.ApproxCount(logText)
	window, known := tokens.ContextWindowForModel(model)
	if !known {
		log.Warnf("unknown model %q, assuming a %d-token context window", model, tokens.DefaultContextWindow)
		window = tokens.DefaultContextWindow
	}
	if promptTokens > window {
		fatalf("estimated prompt size (%d tokens) exceeds %s's context window (%d tokens); narrow the rev range or pass -short", promptTokens, model, window)
	}
	log.Infof("dispatching range=%q model=%s prompt_tokens=%d", cli.revRange, model, promptTokens)

	client, err := openaimodel.New(openaimodel.Options{
		APIKey:  key,
		BaseURL: cfg.URL,
		Model:   model,
	})
	if err != nil {
		fatalf("failed to init client: %v", err)
	}

	var spinner *term.Spinner
	if !cli.noSpinner && term.IsTerminal() {
		spinner = term.StartSpinner(os.Stdout, term.SpinnerOptions{
			Label: "waiting for " + model,
		})
	}
	stopSpinner := func() {
		if spinner != nil {
			spinner.Stop()
			spinner = nil
		}
	}

	painter := term.NewPainter(term.PainterOptions{
		Out:          os.Stdout,
		Width:        term.Width,
		PromptTokens: promptTokens,
		Pricing:      tokens.PricingForModel(model),
		OnFirstDelta: stopSpinner,
	})

	err = client.Stream(ctx, agent.Request{
		Model: model,
		Messages: []agent.Message{
			{Role: agent.RoleSystem, Content: system},
			{Role: agent.RoleUser, Content: logText},
		},
		Temperature:      cli.temperature,
		FrequencyPenalty: cli.frequencyPenalty,
	}, func(ev agent.StreamEvent) {
		if ev.Type != agent.StreamEventTextDelta {
			return
		}
		if err := painter.Append(ev.Text); err != nil {
			stopSpinner()
			fatalf("terminal write failed: %v", err)
		}
	})
	stopSpinner()
	if err != nil {
		fatalf("stream failed: %v", err)
	}

	if err := painter.Finish(); err != nil {
		fatalf("terminal write failed: %v", err)
	}
	log.Infof("stream complete response_units=%d", painter.ResponseUnits())
}

func loginMain(args []string) {
	if len(args) != 1 {
		fatalf("usage: chlog login <api-key>")
	}
	if err := auth.SaveAPIKey(args[0]); err != nil {
		fatalf("failed to save API key: %v", err)
	}
	fmt.Println("API key saved.")
}

func logoutMain() {
	if err := auth.Clear(); err != nil {
		fatalf("failed to clear credentials: %v", err)
	}
	fmt.Println("Credentials removed.")
}

func displayRange(revRange string) string {
	if revRange == "" {
		return "the entire history"
	}
	return revRange
}

// fatalf prints a user-visible error, records it in the log file, and
// exits non-zero.
func fatalf(format string, args ...any) {
	log.Errorf(format, args...)
	fmt.Fprintf(os.Stderr, "chlog: "+format+"\n", args...)
	os.Exit(1)
}
