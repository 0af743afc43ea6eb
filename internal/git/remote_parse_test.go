package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRemoteOutput(t *testing.T) {
	t.Run("deduplicates fetch and push lines into one record", func(t *testing.T) {
		input := "origin\thttps://example.com/repo.git (fetch)\n" +
			"origin\thttps://example.com/repo.git (push)"

		remotes := parseRemoteOutput(input)

		require.Equal(t, []Remote{{
			Name:     "origin",
			FetchURL: "https://example.com/repo.git",
			PushURL:  "https://example.com/repo.git",
		}}, remotes)
	})

	t.Run("preserves first-seen order across multiple remotes", func(t *testing.T) {
		input := "upstream\tgit@example.com:up.git (fetch)\n" +
			"upstream\tgit@example.com:up.git (push)\n" +
			"origin\tgit@example.com:origin.git (fetch)\n" +
			"origin\tgit@example.com:origin.git (push)"

		remotes := parseRemoteOutput(input)

		require.Len(t, remotes, 2)
		require.Equal(t, "upstream", remotes[0].Name)
		require.Equal(t, "origin", remotes[1].Name)
	})

	t.Run("carries distinct push URLs", func(t *testing.T) {
		input := "origin\thttps://example.com/fetch.git (fetch)\n" +
			"origin\thttps://example.com/push.git (push)"

		remotes := parseRemoteOutput(input)

		require.Len(t, remotes, 1)
		require.Equal(t, "https://example.com/fetch.git", remotes[0].FetchURL)
		require.Equal(t, "https://example.com/push.git", remotes[0].PushURL)
	})

	t.Run("ignores lines that do not match the remote pattern", func(t *testing.T) {
		remotes := parseRemoteOutput("not a remote line\n\n")
		require.Empty(t, remotes)
	})
}
