package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractCommitHash(t *testing.T) {
	t.Run("extracts the bracketed short hash", func(t *testing.T) {
		hash := extractCommitHash("[main abc1234] fix the thing\n 1 file changed")
		require.Equal(t, "abc1234", hash)
	})

	t.Run("handles root commits", func(t *testing.T) {
		hash := extractCommitHash("[main (root-commit) f00dbeef] initial")
		require.Equal(t, "f00dbeef", hash)
	})

	t.Run("unrecognized output falls back to the full line", func(t *testing.T) {
		output := "something unexpected happened"
		fallback := extractCommitHash(output)
		require.Equal(t, output, fallback)

		// Re-parsing the fallback yields itself
		require.Equal(t, fallback, extractCommitHash(fallback))
	})
}

func TestIsIdentityError(t *testing.T) {
	t.Run("recognizes missing identity stderr", func(t *testing.T) {
		stderr := "*** Please tell me who you are.\n\nRun\n\n  git config --global user.email \"you@example.com\""
		require.True(t, isIdentityError(stderr))
	})

	t.Run("does not match unrelated failures", func(t *testing.T) {
		require.False(t, isIdentityError("fatal: unable to write new index file"))
	})
}
