package errors_test

import (
	stderrors "errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	"gitkit.dev/gitkit/internal/errors"
)

func TestCommandFailedError(t *testing.T) {
	t.Run("message is stderr when stderr is non-empty", func(t *testing.T) {
		err := errors.NewCommandFailedError([]string{"status"}, 128, "", "fatal: not a git repository\n", nil)
		require.Equal(t, "fatal: not a git repository", err.Error())
	})

	t.Run("message is a generic exit-code line when stderr is empty", func(t *testing.T) {
		err := errors.NewCommandFailedError([]string{"diff", "--quiet"}, 1, "", "", nil)
		require.Equal(t, "git diff --quiet exited with code 1", err.Error())
	})

	t.Run("matches the sentinel via errors.Is", func(t *testing.T) {
		var err error = errors.NewCommandFailedError([]string{"status"}, 1, "", "boom", nil)
		require.ErrorIs(t, err, errors.ErrCommandFailed)
		require.NotErrorIs(t, err, errors.ErrGitNotInstalled)
	})

	t.Run("unwraps the underlying cause", func(t *testing.T) {
		cause := &exec.ExitError{}
		var err error = errors.NewCommandFailedError([]string{"status"}, 1, "", "", cause)

		var exitErr *exec.ExitError
		require.True(t, stderrors.As(err, &exitErr))
	})
}

func TestSpawnError(t *testing.T) {
	t.Run("matches the sentinel and carries the OS error", func(t *testing.T) {
		cause := exec.ErrNotFound
		var err error = errors.NewSpawnError(cause)

		require.ErrorIs(t, err, errors.ErrGitNotInstalled)
		require.ErrorIs(t, err, exec.ErrNotFound)
		require.Contains(t, err.Error(), "failed to start git")
	})
}

func TestNotARepositoryError(t *testing.T) {
	t.Run("includes the path in the message", func(t *testing.T) {
		var err error = errors.NewNotARepositoryError("/tmp/somewhere")
		require.ErrorIs(t, err, errors.ErrNotARepository)
		require.Equal(t, "/tmp/somewhere is not a git repository", err.Error())
	})
}

func TestIdentityNotConfiguredError(t *testing.T) {
	t.Run("carries remediation instructions", func(t *testing.T) {
		var err error = errors.NewIdentityNotConfiguredError("*** Please tell me who you are.")
		require.ErrorIs(t, err, errors.ErrIdentityNotConfigured)
		require.Contains(t, err.Error(), "git config --global user.name")
		require.Contains(t, err.Error(), "git config --global user.email")
	})
}
