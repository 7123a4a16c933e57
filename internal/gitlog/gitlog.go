package gitlog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// CommandExecutor runs a prepared command and returns its stdout.
// It exists so tests can substitute a fake git.
type CommandExecutor interface {
	ExecuteWithOutput(cmd *exec.Cmd) (string, error)
}

// ExecExecutor is the default CommandExecutor backed by os/exec.
type ExecExecutor struct{}

// ExecuteWithOutput runs the command, capturing stdout and folding stderr
// into the returned error on failure.
func (ExecExecutor) ExecuteWithOutput(cmd *exec.Cmd) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("%s: %s", strings.Join(cmd.Args, " "), msg)
	}
	return stdout.String(), nil
}

// ErrEmptyRange is returned when git produced no commits for the range.
var ErrEmptyRange = errors.New("no commits in range")

// ErrNotUTF8 is returned when git's output is not valid UTF-8.
var ErrNotUTF8 = errors.New("git log output is not valid UTF-8")

// Options controls what Collect asks git for.
type Options struct {
	// Range is a rev range expression (tag..tag, hash..HEAD, ...).
	// Empty means the log command's own default: the entire history.
	Range string
	// Short keeps only the first line of each commit message.
	Short bool
}

// Collect shells out to `git log` and returns its output as UTF-8 text.
func Collect(ctx context.Context, executor CommandExecutor, opts Options) (string, error) {
	args := []string{"log", "--no-color"}
	if opts.Short {
		args = append(args, "--format=%h %s")
	} else {
		args = append(args, "--format=%h %B")
	}
	if r := strings.TrimSpace(opts.Range); r != "" {
		args = append(args, r)
	}

	out, err := executor.ExecuteWithOutput(exec.CommandContext(ctx, "git", args...))
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(out) {
		return "", ErrNotUTF8
	}
	if strings.TrimSpace(out) == "" {
		return "", ErrEmptyRange
	}
	return out, nil
}
