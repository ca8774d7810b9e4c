//go:build integration

package gitrepo_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/docbatch/internal/infrastructure/repositories/gitrepo"
)

// initRepo creates a temporary repository with a committer identity configured.
func initRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	cfg, err := repo.Config()
	require.NoError(t, err)
	cfg.User.Name = "Docs Bot"
	cfg.User.Email = "docs-bot@example.com"
	require.NoError(t, repo.SetConfig(cfg))

	return dir, repo
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// commitEverything stages the whole tree and commits it.
func commitEverything(t *testing.T, repo *git.Repository, message string) {
	t.Helper()

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, worktree.AddWithOptions(&git.AddOptions{All: true}))
	_, err = worktree.Commit(message, &git.CommitOptions{})
	require.NoError(t, err)
}

func TestNewGitWorktreeRepository(t *testing.T) {
	t.Parallel()

	t.Run("should open a repository root", func(t *testing.T) {
		t.Parallel()

		// given
		dir, _ := initRepo(t)

		// when
		repo, err := gitrepo.NewGitWorktreeRepository(dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, dir, repo.Root())
	})

	t.Run("should fail outside a repository root", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()

		// when
		_, err := gitrepo.NewGitWorktreeRepository(dir)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a git repository root")
	})

	t.Run("should not detect a repository from a subdirectory", func(t *testing.T) {
		t.Parallel()

		// given
		dir, _ := initRepo(t)
		sub := filepath.Join(dir, "api-reference")
		require.NoError(t, os.MkdirAll(sub, 0o750))

		// when
		_, err := gitrepo.NewGitWorktreeRepository(sub)

		// then
		require.Error(t, err)
	})
}

func TestGitWorktreeRepositoryHasDiff(t *testing.T) {
	t.Parallel()

	t.Run("should detect modified, untracked, and clean files", func(t *testing.T) {
		t.Parallel()

		// given
		dir, rawRepo := initRepo(t)
		writeFile(t, dir, "README.md", "# Docs\n")
		writeFile(t, dir, "docs.json", "{}\n")
		commitEverything(t, rawRepo, "initial")

		writeFile(t, dir, "docs.json", "{\"nav\":[]}\n")
		writeFile(t, dir, "quickstart.mdx", "# Quickstart\n")

		repo, err := gitrepo.NewGitWorktreeRepository(dir)
		require.NoError(t, err)

		// when / then
		modified, err := repo.HasDiff("docs.json")
		require.NoError(t, err)
		assert.True(t, modified)

		untracked, err := repo.HasDiff("quickstart.mdx")
		require.NoError(t, err)
		assert.True(t, untracked)

		clean, err := repo.HasDiff("README.md")
		require.NoError(t, err)
		assert.False(t, clean)

		missing, err := repo.HasDiff("nonexistent.mdx")
		require.NoError(t, err)
		assert.False(t, missing)
	})

	t.Run("should match changed files under a directory prefix", func(t *testing.T) {
		t.Parallel()

		// given
		dir, rawRepo := initRepo(t)
		writeFile(t, dir, "sdk/go.mdx", "# Go SDK\n")
		commitEverything(t, rawRepo, "initial")
		writeFile(t, dir, "sdk/go.mdx", "# Go SDK v2\n")

		repo, err := gitrepo.NewGitWorktreeRepository(dir)
		require.NoError(t, err)

		// when
		changed, err := repo.HasDiff("sdk")

		// then
		require.NoError(t, err)
		assert.True(t, changed)
	})
}

func TestGitWorktreeRepositoryStageAndCommit(t *testing.T) {
	t.Parallel()

	t.Run("should commit only the staged file", func(t *testing.T) {
		t.Parallel()

		// given
		dir, rawRepo := initRepo(t)
		writeFile(t, dir, "a.mdx", "# A\n")
		writeFile(t, dir, "b.mdx", "# B\n")
		commitEverything(t, rawRepo, "initial")

		writeFile(t, dir, "a.mdx", "# A changed\n")
		writeFile(t, dir, "b.mdx", "# B changed\n")

		repo, err := gitrepo.NewGitWorktreeRepository(dir)
		require.NoError(t, err)

		// when
		require.NoError(t, repo.Stage("a.mdx"))
		hash, err := repo.Commit(context.Background(), "docs: update a")

		// then
		require.NoError(t, err)
		assert.Len(t, hash, 7)

		aClean, err := repo.HasDiff("a.mdx")
		require.NoError(t, err)
		assert.False(t, aClean)

		bStillChanged, err := repo.HasDiff("b.mdx")
		require.NoError(t, err)
		assert.True(t, bStillChanged)
	})

	t.Run("should refuse to commit with a cancelled context", func(t *testing.T) {
		t.Parallel()

		// given
		dir, rawRepo := initRepo(t)
		writeFile(t, dir, "a.mdx", "# A\n")
		commitEverything(t, rawRepo, "initial")
		writeFile(t, dir, "a.mdx", "# A changed\n")

		repo, err := gitrepo.NewGitWorktreeRepository(dir)
		require.NoError(t, err)
		require.NoError(t, repo.Stage("a.mdx"))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		_, err = repo.Commit(ctx, "docs: update a")

		// then
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestGitWorktreeRepositoryTracking(t *testing.T) {
	t.Parallel()

	t.Run("should report tracked files and directory prefixes", func(t *testing.T) {
		t.Parallel()

		// given
		dir, rawRepo := initRepo(t)
		writeFile(t, dir, "favicon.svg", "<svg/>\n")
		writeFile(t, dir, "essentials/markdown.mdx", "# Markdown\n")
		writeFile(t, dir, "essentials/images.mdx", "# Images\n")
		commitEverything(t, rawRepo, "initial")
		writeFile(t, dir, "untracked.mdx", "# New\n")

		repo, err := gitrepo.NewGitWorktreeRepository(dir)
		require.NoError(t, err)

		// when / then
		file, err := repo.IsTracked("favicon.svg")
		require.NoError(t, err)
		assert.True(t, file)

		directory, err := repo.IsTracked("essentials")
		require.NoError(t, err)
		assert.True(t, directory)

		untracked, err := repo.IsTracked("untracked.mdx")
		require.NoError(t, err)
		assert.False(t, untracked)

		missing, err := repo.IsTracked("nope")
		require.NoError(t, err)
		assert.False(t, missing)
	})

	t.Run("should track nothing on an unborn HEAD", func(t *testing.T) {
		t.Parallel()

		// given
		dir, _ := initRepo(t)
		repo, err := gitrepo.NewGitWorktreeRepository(dir)
		require.NoError(t, err)

		// when
		tracked, err := repo.IsTracked("anything")

		// then
		require.NoError(t, err)
		assert.False(t, tracked)
	})
}

func TestGitWorktreeRepositoryRemove(t *testing.T) {
	t.Parallel()

	t.Run("should remove a tracked file and commit the deletion", func(t *testing.T) {
		t.Parallel()

		// given
		dir, rawRepo := initRepo(t)
		writeFile(t, dir, "favicon.svg", "<svg/>\n")
		writeFile(t, dir, "README.md", "# Docs\n")
		commitEverything(t, rawRepo, "initial")

		repo, err := gitrepo.NewGitWorktreeRepository(dir)
		require.NoError(t, err)

		// when
		require.NoError(t, repo.Remove("favicon.svg"))
		_, err = repo.Commit(context.Background(), "chore: remove favicon")

		// then
		require.NoError(t, err)

		tracked, err := repo.IsTracked("favicon.svg")
		require.NoError(t, err)
		assert.False(t, tracked)

		_, statErr := os.Stat(filepath.Join(dir, "favicon.svg"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("should remove every tracked file under a directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir, rawRepo := initRepo(t)
		writeFile(t, dir, "essentials/markdown.mdx", "# Markdown\n")
		writeFile(t, dir, "essentials/media/images.mdx", "# Images\n")
		writeFile(t, dir, "README.md", "# Docs\n")
		commitEverything(t, rawRepo, "initial")

		repo, err := gitrepo.NewGitWorktreeRepository(dir)
		require.NoError(t, err)

		// when
		require.NoError(t, repo.Remove("essentials"))
		_, err = repo.Commit(context.Background(), "chore: drop legacy essentials pages")

		// then
		require.NoError(t, err)

		tracked, err := repo.IsTracked("essentials")
		require.NoError(t, err)
		assert.False(t, tracked)

		readme, err := repo.IsTracked("README.md")
		require.NoError(t, err)
		assert.True(t, readme)
	})

	t.Run("should fail for an untracked path", func(t *testing.T) {
		t.Parallel()

		// given
		dir, rawRepo := initRepo(t)
		writeFile(t, dir, "README.md", "# Docs\n")
		commitEverything(t, rawRepo, "initial")

		repo, err := gitrepo.NewGitWorktreeRepository(dir)
		require.NoError(t, err)

		// when
		err = repo.Remove("ghost.svg")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not tracked")
	})
}

func TestGitWorktreeRepositorySummary(t *testing.T) {
	t.Parallel()

	t.Run("should report pending changes and render a status listing", func(t *testing.T) {
		t.Parallel()

		// given
		dir, rawRepo := initRepo(t)
		writeFile(t, dir, "README.md", "# Docs\n")
		commitEverything(t, rawRepo, "initial")

		repo, err := gitrepo.NewGitWorktreeRepository(dir)
		require.NoError(t, err)

		pendingBefore, err := repo.HasPendingChanges()
		require.NoError(t, err)
		require.False(t, pendingBefore)

		writeFile(t, dir, "README.md", "# Docs v2\n")

		// when
		pending, err := repo.HasPendingChanges()
		require.NoError(t, err)
		summary, summaryErr := repo.StatusSummary()

		// then
		require.NoError(t, summaryErr)
		assert.True(t, pending)
		assert.Contains(t, summary, "README.md")
	})

	t.Run("should stage everything and leave the tree clean after commit", func(t *testing.T) {
		t.Parallel()

		// given
		dir, rawRepo := initRepo(t)
		writeFile(t, dir, "README.md", "# Docs\n")
		commitEverything(t, rawRepo, "initial")

		writeFile(t, dir, "README.md", "# Docs v2\n")
		writeFile(t, dir, "new.mdx", "# New page\n")

		repo, err := gitrepo.NewGitWorktreeRepository(dir)
		require.NoError(t, err)

		// when
		require.NoError(t, repo.StageAll())
		_, err = repo.Commit(context.Background(), "chore: commit remaining changes")

		// then
		require.NoError(t, err)

		pending, err := repo.HasPendingChanges()
		require.NoError(t, err)
		assert.False(t, pending)
	})

	t.Run("should list recent commits newest first", func(t *testing.T) {
		t.Parallel()

		// given
		dir, rawRepo := initRepo(t)
		writeFile(t, dir, "a.mdx", "# A\n")
		commitEverything(t, rawRepo, "first commit")
		writeFile(t, dir, "b.mdx", "# B\n")
		commitEverything(t, rawRepo, "second commit\n\nwith a body")

		repo, err := gitrepo.NewGitWorktreeRepository(dir)
		require.NoError(t, err)

		// when
		commits, err := repo.RecentLog(10)
		limited, limitedErr := repo.RecentLog(1)

		// then
		require.NoError(t, err)
		require.Len(t, commits, 2)
		assert.Equal(t, "second commit", commits[0].Message)
		assert.Equal(t, "first commit", commits[1].Message)
		assert.Len(t, commits[0].Hash, 7)

		require.NoError(t, limitedErr)
		assert.Len(t, limited, 1)
	})

	t.Run("should return an empty log on an unborn HEAD", func(t *testing.T) {
		t.Parallel()

		// given
		dir, _ := initRepo(t)
		repo, err := gitrepo.NewGitWorktreeRepository(dir)
		require.NoError(t, err)

		// when
		commits, err := repo.RecentLog(10)

		// then
		require.NoError(t, err)
		assert.Empty(t, commits)
	})
}
