package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gitkiterrors "gitkit.dev/gitkit/internal/errors"
	"gitkit.dev/gitkit/internal/git"
	"gitkit.dev/gitkit/testhelpers"
)

func TestStatus(t *testing.T) {
	t.Run("reports branch, untracked and last commit", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial commit", "init")
		})

		require.NoError(t, scene.Repo.WriteFile("newfile.txt", "hello"))

		status, err := git.NewClient(scene.Dir).Status(context.Background())
		require.NoError(t, err)

		require.True(t, status.IsRepo)
		require.Equal(t, "main", status.Branch)
		require.Equal(t, "initial commit", status.LastCommit)
		require.Equal(t, []string{"newfile.txt"}, status.Untracked)
		require.Empty(t, status.Staged)
		require.Empty(t, status.Unstaged)
	})

	t.Run("reports index-modified files in the unstaged list", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		// Modify the committed file and stage it: the entry's XY code
		// starts with M, which is the only shape the classifier reads.
		require.NoError(t, scene.Repo.CreateChange("changed", "init", false))

		status, err := git.NewClient(scene.Dir).Status(context.Background())
		require.NoError(t, err)
		require.Equal(t, []string{"init_test.txt"}, status.Unstaged)
		require.Empty(t, status.Staged)
	})

	t.Run("worktree-only modifications are not classified", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		// XY for a worktree-only modification is ".M"; the classifier
		// only reads codes whose first character is M.
		require.NoError(t, scene.Repo.CreateChange("changed", "init", true))

		status, err := git.NewClient(scene.Dir).Status(context.Background())
		require.NoError(t, err)
		require.Empty(t, status.Unstaged)
		require.Empty(t, status.Staged)
	})

	t.Run("uses the no-commits sentinel in an empty repository", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		status, err := git.NewClient(scene.Dir).Status(context.Background())
		require.NoError(t, err)
		require.True(t, status.IsRepo)
		require.Equal(t, git.NoCommitsSentinel, status.LastCommit)
	})

	t.Run("reports a plain directory as not a repository", func(t *testing.T) {
		dir := t.TempDir()

		status, err := git.NewClient(dir).Status(context.Background())
		require.NoError(t, err)
		require.False(t, status.IsRepo)
		require.NotEmpty(t, status.Message)
	})

	t.Run("propagates the failure when a repository marker exists", func(t *testing.T) {
		// An empty .git directory is not a valid repository, so the
		// status query still fails, but the marker rules out the
		// not-a-repository fallback.
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o750))

		_, err := git.NewClient(dir).Status(context.Background())
		require.Error(t, err)
		require.ErrorIs(t, err, gitkiterrors.ErrCommandFailed)
	})
}

func TestCommitAndLog(t *testing.T) {
	t.Run("stage then commit returns the short hash", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		require.NoError(t, scene.Repo.WriteFile("feature.txt", "content"))

		client := git.NewClient(scene.Dir)
		ctx := context.Background()

		require.NoError(t, client.StageFiles(ctx, "feature.txt"))

		hash, err := client.Commit(ctx, "add feature", git.CommitOptions{})
		require.NoError(t, err)
		require.Regexp(t, "^[0-9a-f]{4,40}$", hash)

		testhelpers.ExpectHeadCommitMessage(t, scene.Repo, "add feature")
		testhelpers.ExpectCommitCount(t, scene.Repo, 2)
	})

	t.Run("log returns commits newest first with all fields", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CreateChangeAndCommit("first commit", "a"); err != nil {
				return err
			}
			return s.Repo.CreateChangeAndCommit("second commit", "b")
		})

		commits, err := git.NewClient(scene.Dir).Log(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, commits, 2)

		require.Equal(t, "second commit", commits[0].Subject)
		require.Equal(t, "first commit", commits[1].Subject)
		require.Equal(t, "Test User", commits[0].AuthorName)
		require.Equal(t, "test@example.com", commits[0].AuthorEmail)
		require.Len(t, commits[0].Hash, 40)
		require.NotEmpty(t, commits[0].ShortHash)
		require.NotEmpty(t, commits[0].Date)
	})

	t.Run("log respects the requested limit", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			for _, msg := range []string{"one", "two", "three"} {
				if err := s.Repo.CreateChangeAndCommit(msg, msg); err != nil {
					return err
				}
			}
			return nil
		})

		commits, err := git.NewClient(scene.Dir).Log(context.Background(), 2)
		require.NoError(t, err)
		require.Len(t, commits, 2)
		require.Equal(t, "three", commits[0].Subject)
	})

	t.Run("log of an empty repository yields an empty slice", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		commits, err := git.NewClient(scene.Dir).Log(context.Background(), 10)
		require.NoError(t, err)
		require.NotNil(t, commits)
		require.Empty(t, commits)
	})
}

func TestBranchOperations(t *testing.T) {
	t.Run("creates, lists and switches branches", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		client := git.NewClient(scene.Dir)
		ctx := context.Background()

		require.NoError(t, client.CreateBranch(ctx, "feature"))
		testhelpers.ExpectCurrentBranch(t, scene.Repo, "feature")

		current, err := client.CurrentBranch(ctx)
		require.NoError(t, err)
		require.Equal(t, "feature", current)

		branches, err := client.ListBranches(ctx, false)
		require.NoError(t, err)
		require.Equal(t, []git.Branch{
			{Name: "feature", IsCurrent: true},
			{Name: "main", IsCurrent: false},
		}, branches)

		names, err := client.BranchNames(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"feature", "main"}, names)

		require.NoError(t, client.SwitchBranch(ctx, "main"))
		testhelpers.ExpectCurrentBranch(t, scene.Repo, "main")
		testhelpers.ExpectBranches(t, scene.Repo, []string{"feature", "main"})
	})
}

func TestStagingOperations(t *testing.T) {
	t.Run("stage and unstage roundtrip", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		require.NoError(t, scene.Repo.WriteFile("staged.txt", "content"))

		client := git.NewClient(scene.Dir)
		ctx := context.Background()

		require.NoError(t, client.StageFiles(ctx, "staged.txt"))
		staged, err := scene.Repo.RunGitCommandAndGetOutput("diff", "--cached", "--name-only")
		require.NoError(t, err)
		require.Equal(t, "staged.txt", staged)

		require.NoError(t, client.UnstageFiles(ctx))
		staged, err = scene.Repo.RunGitCommandAndGetOutput("diff", "--cached", "--name-only")
		require.NoError(t, err)
		require.Empty(t, staged)
	})

	t.Run("discard restores tracked file contents", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		// Overwrite the committed file
		require.NoError(t, scene.Repo.CreateChange("dirty", "init", true))

		dirty, err := scene.Repo.RunGitCommandAndGetOutput("diff", "--name-only")
		require.NoError(t, err)
		require.Equal(t, "init_test.txt", dirty)

		client := git.NewClient(scene.Dir)
		require.NoError(t, client.DiscardChanges(context.Background()))

		dirty, err = scene.Repo.RunGitCommandAndGetOutput("diff", "--name-only")
		require.NoError(t, err)
		require.Empty(t, dirty)
	})
}

func TestDiff(t *testing.T) {
	t.Run("unstaged and staged diffs are distinct", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		require.NoError(t, scene.Repo.CreateChange("modified content", "init", true))

		client := git.NewClient(scene.Dir)
		ctx := context.Background()

		diff, err := client.Diff(ctx)
		require.NoError(t, err)
		require.Contains(t, diff, "modified content")

		stagedDiff, err := client.StagedDiff(ctx)
		require.NoError(t, err)
		require.Empty(t, stagedDiff)

		require.NoError(t, client.StageFiles(ctx))

		stagedDiff, err = client.StagedDiff(ctx)
		require.NoError(t, err)
		require.Contains(t, stagedDiff, "modified content")
	})
}

func TestRemotesAndSync(t *testing.T) {
	t.Run("lists remotes with fetch and push URLs", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		bareDir := testhelpers.Must(scene.Repo.CreateBareRemote("origin"))

		remotes, err := git.NewClient(scene.Dir).ListRemotes(context.Background())
		require.NoError(t, err)
		require.Equal(t, []git.Remote{{
			Name:     "origin",
			FetchURL: bareDir,
			PushURL:  bareDir,
		}}, remotes)
	})

	t.Run("push then pull roundtrip against a bare remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		client := git.NewClient(scene.Dir)
		ctx := context.Background()

		require.NoError(t, client.Push(ctx, "origin", "main"))
		require.NoError(t, client.Pull(ctx, "origin", "main"))
	})

	t.Run("clone produces a working repository copy", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		bareDir, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.PushBranch("origin", "main"))

		cloneDir := t.TempDir() + string(os.PathSeparator) + "clone"
		require.NoError(t, git.Clone(context.Background(), bareDir, cloneDir))

		status, err := git.NewClient(cloneDir).Status(context.Background())
		require.NoError(t, err)
		require.True(t, status.IsRepo)
		require.Equal(t, "main", status.Branch)
		require.Equal(t, "initial", status.LastCommit)
	})
}

func TestInit(t *testing.T) {
	t.Run("initializes a repository with the requested branch", func(t *testing.T) {
		dir := t.TempDir()

		client := git.NewClient(dir)
		require.NoError(t, client.Init(context.Background(), "trunk"))

		status, err := client.Status(context.Background())
		require.NoError(t, err)
		require.True(t, status.IsRepo)
		require.Equal(t, "trunk", status.Branch)
	})
}
