package testhelpers

import (
	"sort"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/require"
)

// Must is a generic helper that panics if err is not nil, otherwise
// returns the value. Useful for test setup where errors should halt
// execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// openRepo opens the scene repository with go-git for state inspection.
// The product code only ever shells out to git; go-git gives tests an
// independent view of what those subprocesses actually did.
func openRepo(t *testing.T, repo *GitRepo) *gogit.Repository {
	t.Helper()

	r, err := gogit.PlainOpen(repo.Dir)
	require.NoError(t, err, "Failed to open repository")
	return r
}

// ExpectBranches asserts that the repository has exactly the expected
// local branches (order-insensitive).
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	r := openRepo(t, repo)
	iter, err := r.Branches()
	require.NoError(t, err, "Failed to list branches")

	branches := []string{}
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		branches = append(branches, ref.Name().Short())
		return nil
	})
	require.NoError(t, err)

	sort.Strings(branches)
	sort.Strings(expected)
	require.Equal(t, expected, branches, "Branches do not match")
}

// ExpectCurrentBranch asserts the checked-out branch name.
func ExpectCurrentBranch(t *testing.T, repo *GitRepo, expected string) {
	t.Helper()

	r := openRepo(t, repo)
	head, err := r.Head()
	require.NoError(t, err, "Failed to read HEAD")
	require.True(t, head.Name().IsBranch(), "HEAD is not on a branch")
	require.Equal(t, expected, head.Name().Short())
}

// ExpectHeadCommitMessage asserts the subject of the commit at HEAD.
func ExpectHeadCommitMessage(t *testing.T, repo *GitRepo, expected string) {
	t.Helper()

	r := openRepo(t, repo)
	head, err := r.Head()
	require.NoError(t, err, "Failed to read HEAD")

	commit, err := r.CommitObject(head.Hash())
	require.NoError(t, err, "Failed to read HEAD commit")

	message := commit.Message
	for i, c := range message {
		if c == '\n' {
			message = message[:i]
			break
		}
	}
	require.Equal(t, expected, message)
}

// ExpectCommitCount asserts the number of commits reachable from HEAD.
func ExpectCommitCount(t *testing.T, repo *GitRepo, expected int) {
	t.Helper()

	r := openRepo(t, repo)
	head, err := r.Head()
	require.NoError(t, err, "Failed to read HEAD")

	iter, err := r.Log(&gogit.LogOptions{From: head.Hash()})
	require.NoError(t, err, "Failed to walk history")

	count := 0
	for {
		_, err := iter.Next()
		if err != nil {
			break
		}
		count++
	}
	require.Equal(t, expected, count, "Commit count does not match")
}
