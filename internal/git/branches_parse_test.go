package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBranchLines(t *testing.T) {
	t.Run("marks the checked-out branch", func(t *testing.T) {
		branches := parseBranchLines([]string{"* main", "  dev"})

		require.Equal(t, []Branch{
			{Name: "main", IsCurrent: true},
			{Name: "dev", IsCurrent: false},
		}, branches)
	})

	t.Run("drops lines that trim to an empty name", func(t *testing.T) {
		branches := parseBranchLines([]string{"* main", "  "})

		require.Equal(t, []Branch{{Name: "main", IsCurrent: true}}, branches)
	})

	t.Run("keeps remote-tracking branch names intact", func(t *testing.T) {
		branches := parseBranchLines([]string{"* main", "  remotes/origin/main"})

		require.Len(t, branches, 2)
		require.Equal(t, "remotes/origin/main", branches[1].Name)
		require.False(t, branches[1].IsCurrent)
	})
}
