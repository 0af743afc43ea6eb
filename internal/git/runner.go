// Package git wraps the git executable: it builds argument vectors, runs
// git as a subprocess, captures stdout/stderr, and parses a fixed set of
// output formats into typed records. Repository correctness (object model,
// refs, merging, transport) is entirely delegated to git itself.
package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	gitkiterrors "gitkit.dev/gitkit/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands when the
// caller's context carries no deadline of its own.
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands in a working directory.
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner. An empty workingDir runs
// git in the current process directory.
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// Run executes a git command and returns the trimmed stdout.
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, true, args...)
}

// RunRaw executes a git command and returns stdout without trimming.
// Diff output keeps its trailing newline this way.
func (r *CommandRunner) RunRaw(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, false, args...)
}

// RunLines executes a git command and returns stdout split into lines.
// Empty output yields an empty slice.
func (r *CommandRunner) RunLines(ctx context.Context, args ...string) ([]string, error) {
	output, err := r.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

func (r *CommandRunner) runInternal(ctx context.Context, trim bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if ctx.Err() == context.DeadlineExceeded {
				err = ctx.Err()
			}
			return "", gitkiterrors.NewCommandFailedError(args, exitErr.ExitCode(), stdout.String(), stderr.String(), err)
		}
		// The process never started: binary not found, permission denied.
		return "", gitkiterrors.NewSpawnError(err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}
