package repositories

import (
	"context"

	"github.com/rios0rios0/docbatch/internal/domain/entities"
)

// WorktreeRepository abstracts the version-control collaborator that owns all
// real state: diffing, staging, committing, and history. The batcher only
// sequences calls against it and never tracks state of its own.
type WorktreeRepository interface {
	// Root returns the absolute path of the repository root.
	Root() string

	// Exists reports whether the path is present in the working tree.
	Exists(path string) bool

	// HasDiff reports whether the path differs from the last commit,
	// counting untracked files as changed.
	HasDiff(path string) (bool, error)

	// IsTracked reports whether the path (file or directory prefix) is
	// present in the HEAD tree.
	IsTracked(path string) (bool, error)

	// Stage marks the path's current content for inclusion in the next commit.
	Stage(path string) error

	// Remove stages the deletion of a tracked path. Directory paths remove
	// every tracked file under the prefix.
	Remove(path string) error

	// Commit creates a commit from everything currently staged and returns
	// its hash.
	Commit(ctx context.Context, message string) (string, error)

	// HasPendingChanges reports whether anything in the tree is still
	// uncommitted (staged or not).
	HasPendingChanges() (bool, error)

	// StageAll stages every modification, addition, and deletion in the tree.
	StageAll() error

	// StatusSummary renders a porcelain-style listing of the working tree.
	StatusSummary() (string, error)

	// RecentLog returns up to limit commits, newest first.
	RecentLog(limit int) ([]entities.CommitInfo, error)
}
