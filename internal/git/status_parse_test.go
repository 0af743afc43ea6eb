package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPorcelainV2Parser(t *testing.T) {
	parser := porcelainV2Parser{}

	t.Run("parses branch header, modified entry and untracked entry", func(t *testing.T) {
		input := "# branch.oid 1234\n" +
			"# branch.head main\n" +
			"1 M. N... 100644 100644 100644 aaaa bbbb path\tfile.txt\n" +
			"? newfile.txt"

		status := parser.parse(input)

		require.Equal(t, "main", status.Branch)
		require.Equal(t, []string{"file.txt"}, status.Unstaged)
		require.Equal(t, []string{"newfile.txt"}, status.Untracked)
		require.Equal(t, []string{}, status.Staged)
	})

	t.Run("falls back to the trailing token when the change line has no tab", func(t *testing.T) {
		input := "# branch.head main\n" +
			"1 M. N... 100644 100644 100644 aaaa bbbb file.txt"

		status := parser.parse(input)

		require.Equal(t, []string{"file.txt"}, status.Unstaged)
	})

	t.Run("classifies rename entries by their third tab field", func(t *testing.T) {
		input := "# branch.head dev\n" +
			"2 R. N... 100644 100644 100644 aaaa bbbb R100 new.txt\told.txt\trenamed.txt"

		status := parser.parse(input)

		require.Equal(t, "dev", status.Branch)
		require.Equal(t, []string{"renamed.txt"}, status.Unstaged)
	})

	t.Run("ignores non-modification change codes", func(t *testing.T) {
		input := "# branch.head main\n" +
			"1 A. N... 100644 100644 100644 aaaa bbbb path\tadded.txt\n" +
			"1 D. N... 100644 100644 100644 aaaa bbbb path\tdeleted.txt"

		status := parser.parse(input)

		require.Empty(t, status.Unstaged)
		require.Empty(t, status.Staged)
	})

	t.Run("preserves output order of untracked entries", func(t *testing.T) {
		input := "? zebra.txt\n? apple.txt\n? middle.txt"

		status := parser.parse(input)

		require.Equal(t, []string{"zebra.txt", "apple.txt", "middle.txt"}, status.Untracked)
	})

	t.Run("ignores unrecognized lines", func(t *testing.T) {
		input := "# branch.upstream origin/main\n" +
			"u UU N... 100644 100644 100644 100644 aaaa bbbb cccc conflict.txt\n" +
			"garbage line"

		status := parser.parse(input)

		require.Empty(t, status.Branch)
		require.Empty(t, status.Unstaged)
		require.Empty(t, status.Untracked)
	})
}
