// Package errors provides sentinel errors and custom error types for gitkit.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrGitNotInstalled indicates that the git binary could not be started
	ErrGitNotInstalled = errors.New("git is not installed")

	// ErrCommandFailed indicates that git ran and exited non-zero
	ErrCommandFailed = errors.New("git command failed")

	// ErrNotARepository indicates that the target directory is not a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrIdentityNotConfigured indicates that user.name/user.email are not set
	ErrIdentityNotConfigured = errors.New("git identity not configured")
)

// SpawnError represents a failure to start the git process at all
// (binary not found on PATH, permission denied).
type SpawnError struct {
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start git: %v", e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrGitNotInstalled
func (e *SpawnError) Is(target error) bool {
	return target == ErrGitNotInstalled
}

// NewSpawnError creates a new SpawnError
func NewSpawnError(err error) *SpawnError {
	return &SpawnError{Err: err}
}

// CommandFailedError represents a git command that ran and exited non-zero
type CommandFailedError struct {
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *CommandFailedError) Error() string {
	if msg := strings.TrimSpace(e.Stderr); msg != "" {
		return msg
	}
	return fmt.Sprintf("git %s exited with code %d", strings.Join(e.Args, " "), e.ExitCode)
}

func (e *CommandFailedError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrCommandFailed
func (e *CommandFailedError) Is(target error) bool {
	return target == ErrCommandFailed
}

// NewCommandFailedError creates a new CommandFailedError
func NewCommandFailedError(args []string, exitCode int, stdout, stderr string, err error) *CommandFailedError {
	return &CommandFailedError{
		Args:     args,
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
		Err:      err,
	}
}

// NotARepositoryError represents a status query against a directory
// that has no repository marker.
type NotARepositoryError struct {
	Path string
}

func (e *NotARepositoryError) Error() string {
	if e.Path == "" {
		return "not a git repository"
	}
	return fmt.Sprintf("%s is not a git repository", e.Path)
}

// Is returns true if the target error is ErrNotARepository
func (e *NotARepositoryError) Is(target error) bool {
	return target == ErrNotARepository
}

// NewNotARepositoryError creates a new NotARepositoryError
func NewNotARepositoryError(path string) *NotARepositoryError {
	return &NotARepositoryError{Path: path}
}

// IdentityNotConfiguredError represents a commit rejected because git has
// no author identity configured. It carries remediation instructions.
type IdentityNotConfiguredError struct {
	Stderr string
}

func (e *IdentityNotConfiguredError) Error() string {
	return "git user identity is not configured; run:\n" +
		"  git config --global user.name \"Your Name\"\n" +
		"  git config --global user.email \"you@example.com\""
}

// Is returns true if the target error is ErrIdentityNotConfigured
func (e *IdentityNotConfiguredError) Is(target error) bool {
	return target == ErrIdentityNotConfigured
}

// NewIdentityNotConfiguredError creates a new IdentityNotConfiguredError
func NewIdentityNotConfiguredError(stderr string) *IdentityNotConfiguredError {
	return &IdentityNotConfiguredError{Stderr: stderr}
}
