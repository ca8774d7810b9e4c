package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/rios0rios0/docbatch/internal/domain/entities"
	"github.com/rios0rios0/docbatch/internal/domain/repositories"
)

const shortHashLen = 7

// GitWorktreeRepository implements repositories.WorktreeRepository on top of
// go-git. All state lives in the repository on disk; every query reads it
// fresh, nothing is cached.
type GitWorktreeRepository struct {
	root     string
	repo     *git.Repository
	worktree *git.Worktree
}

var _ repositories.WorktreeRepository = (*GitWorktreeRepository)(nil)

// NewGitWorktreeRepository opens the repository rooted exactly at path.
// A path that is not a repository root is a fatal condition.
func NewGitWorktreeRepository(path string) (*GitWorktreeRepository, error) {
	root, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// DetectDotGit stays off: from a subdirectory the plan's relative paths
	// would silently point at the wrong files.
	repo, openErr := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{})
	if openErr != nil {
		if errors.Is(openErr, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%q is not a git repository root", root)
		}
		return nil, fmt.Errorf("failed to open repository at %q: %w", root, openErr)
	}

	worktree, wtErr := repo.Worktree()
	if wtErr != nil {
		return nil, fmt.Errorf("failed to open worktree at %q: %w", root, wtErr)
	}

	return &GitWorktreeRepository{root: root, repo: repo, worktree: worktree}, nil
}

// Root returns the absolute repository root path.
func (r *GitWorktreeRepository) Root() string {
	return r.root
}

// Exists reports whether the path is present in the working tree.
func (r *GitWorktreeRepository) Exists(path string) bool {
	_, err := r.worktree.Filesystem.Stat(normalize(path))
	return err == nil
}

// HasDiff reports whether the path differs from the last commit. Untracked
// files count as changed; directory paths match any changed file under them.
func (r *GitWorktreeRepository) HasDiff(path string) (bool, error) {
	status, err := r.worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to read worktree status: %w", err)
	}

	target := normalize(path)
	prefix := target + "/"
	for file, fileStatus := range status {
		if file != target && !strings.HasPrefix(file, prefix) {
			continue
		}
		if fileStatus.Staging != git.Unmodified || fileStatus.Worktree != git.Unmodified {
			return true, nil
		}
	}

	return false, nil
}

// IsTracked reports whether the path is present in the HEAD tree, either as a
// file or as a directory prefix. An unborn HEAD tracks nothing.
func (r *GitWorktreeRepository) IsTracked(path string) (bool, error) {
	tree, err := r.headTree()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return false, nil
		}
		return false, err
	}

	_, findErr := tree.FindEntry(normalize(path))
	if findErr != nil {
		if errors.Is(findErr, object.ErrEntryNotFound) ||
			errors.Is(findErr, object.ErrDirectoryNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to inspect HEAD tree: %w", findErr)
	}

	return true, nil
}

// Stage marks the path's current content for the next commit.
func (r *GitWorktreeRepository) Stage(path string) error {
	if _, err := r.worktree.Add(normalize(path)); err != nil {
		return fmt.Errorf("failed to stage %q: %w", path, err)
	}
	return nil
}

// Remove stages the deletion of a tracked path. For a directory prefix every
// tracked file under it is removed.
func (r *GitWorktreeRepository) Remove(path string) error {
	tree, err := r.headTree()
	if err != nil {
		return fmt.Errorf("failed to resolve HEAD tree: %w", err)
	}

	target := normalize(path)
	prefix := target + "/"
	found := false

	iter := tree.Files()
	defer iter.Close()

	forErr := iter.ForEach(func(file *object.File) error {
		if file.Name != target && !strings.HasPrefix(file.Name, prefix) {
			return nil
		}
		found = true
		if _, rmErr := r.worktree.Remove(file.Name); rmErr != nil {
			return fmt.Errorf("failed to remove %q: %w", file.Name, rmErr)
		}
		return nil
	})
	if forErr != nil {
		return forErr
	}

	if !found {
		return fmt.Errorf("%q is not tracked", path)
	}
	return nil
}

// Commit creates a commit from the staged changes and returns its short hash.
// The author signature comes from the repository configuration.
func (r *GitWorktreeRepository) Commit(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	hash, err := r.worktree.Commit(message, &git.CommitOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}

	return shortHash(hash), nil
}

// HasPendingChanges reports whether anything in the tree is uncommitted.
func (r *GitWorktreeRepository) HasPendingChanges() (bool, error) {
	status, err := r.worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to read worktree status: %w", err)
	}
	return !status.IsClean(), nil
}

// StageAll stages every modification, addition, and deletion in the tree.
func (r *GitWorktreeRepository) StageAll() error {
	if err := r.worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// StatusSummary renders a porcelain-style listing, sorted by path. An empty
// string means the tree is clean.
func (r *GitWorktreeRepository) StatusSummary() (string, error) {
	status, err := r.worktree.Status()
	if err != nil {
		return "", fmt.Errorf("failed to read worktree status: %w", err)
	}

	paths := make([]string, 0, len(status))
	for path := range status {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var builder strings.Builder
	for _, path := range paths {
		fileStatus := status[path]
		fmt.Fprintf(&builder, "%c%c %s\n", fileStatus.Staging, fileStatus.Worktree, path)
	}

	return strings.TrimRight(builder.String(), "\n"), nil
}

// RecentLog returns up to limit commits from HEAD, newest first. An unborn
// HEAD yields an empty log.
func (r *GitWorktreeRepository) RecentLog(limit int) ([]entities.CommitInfo, error) {
	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	iter, logErr := r.repo.Log(&git.LogOptions{From: head.Hash()})
	if logErr != nil {
		return nil, fmt.Errorf("failed to read log: %w", logErr)
	}
	defer iter.Close()

	var commits []entities.CommitInfo
	for len(commits) < limit {
		commit, nextErr := iter.Next()
		if errors.Is(nextErr, io.EOF) {
			break
		}
		if nextErr != nil {
			return nil, fmt.Errorf("failed to read log: %w", nextErr)
		}
		commits = append(commits, entities.CommitInfo{
			Hash:    shortHash(commit.Hash),
			Message: firstLine(commit.Message),
		})
	}

	return commits, nil
}

// headTree resolves the tree of the current HEAD commit.
func (r *GitWorktreeRepository) headTree() (*object.Tree, error) {
	head, err := r.repo.Head()
	if err != nil {
		return nil, err
	}

	commit, commitErr := r.repo.CommitObject(head.Hash())
	if commitErr != nil {
		return nil, fmt.Errorf("failed to resolve HEAD commit: %w", commitErr)
	}

	return commit.Tree()
}

// normalize converts a plan path to the slash-separated form git uses.
func normalize(path string) string {
	return strings.TrimSuffix(filepath.ToSlash(path), "/")
}

func shortHash(hash plumbing.Hash) string {
	return hash.String()[:shortHashLen]
}

func firstLine(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		return message[:idx]
	}
	return message
}
