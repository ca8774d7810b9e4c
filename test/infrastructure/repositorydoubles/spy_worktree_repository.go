//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"strings"

	"github.com/rios0rios0/docbatch/internal/domain/entities"
	"github.com/rios0rios0/docbatch/internal/domain/repositories"
)

// RecordedCommit captures one Commit call together with the paths that were
// staged since the previous commit.
type RecordedCommit struct {
	Message string
	Paths   []string
}

// SpyWorktreeRepository implements repositories.WorktreeRepository as a
// configurable in-memory spy.
type SpyWorktreeRepository struct {
	// --- configuration ---
	RootDir       string
	ExistingPaths map[string]bool
	ChangedPaths  map[string]bool
	TrackedPaths  map[string]bool
	Pending       bool
	Status        string
	Log           []entities.CommitInfo

	// --- injected errors ---
	DiffErr    error
	TrackedErr error
	StageErr   error
	RemoveErr  error
	CommitErr  error
	PendingErr error

	// --- recordings ---
	StagedPaths   []string
	RemovedPaths  []string
	Commits       []RecordedCommit
	StageAllCalls int

	staged []string
}

var _ repositories.WorktreeRepository = (*SpyWorktreeRepository)(nil)

func (r *SpyWorktreeRepository) Root() string {
	if r.RootDir == "" {
		return "/tmp/spy-repo"
	}
	return r.RootDir
}

func (r *SpyWorktreeRepository) Exists(path string) bool {
	return r.ExistingPaths[path]
}

func (r *SpyWorktreeRepository) HasDiff(path string) (bool, error) {
	if r.DiffErr != nil {
		return false, r.DiffErr
	}
	prefix := path + "/"
	for changed, isChanged := range r.ChangedPaths {
		if !isChanged {
			continue
		}
		if changed == path || strings.HasPrefix(changed, prefix) {
			return true, nil
		}
	}
	return false, nil
}

func (r *SpyWorktreeRepository) IsTracked(path string) (bool, error) {
	if r.TrackedErr != nil {
		return false, r.TrackedErr
	}
	return r.TrackedPaths[path], nil
}

func (r *SpyWorktreeRepository) Stage(path string) error {
	if r.StageErr != nil {
		return r.StageErr
	}
	r.StagedPaths = append(r.StagedPaths, path)
	r.staged = append(r.staged, path)
	return nil
}

func (r *SpyWorktreeRepository) Remove(path string) error {
	if r.RemoveErr != nil {
		return r.RemoveErr
	}
	r.RemovedPaths = append(r.RemovedPaths, path)
	r.staged = append(r.staged, path)
	return nil
}

func (r *SpyWorktreeRepository) Commit(_ context.Context, message string) (string, error) {
	if r.CommitErr != nil {
		return "", r.CommitErr
	}
	r.Commits = append(r.Commits, RecordedCommit{Message: message, Paths: r.staged})
	r.staged = nil
	return fmt.Sprintf("fake%03d", len(r.Commits)), nil
}

func (r *SpyWorktreeRepository) HasPendingChanges() (bool, error) {
	if r.PendingErr != nil {
		return false, r.PendingErr
	}
	return r.Pending, nil
}

func (r *SpyWorktreeRepository) StageAll() error {
	if r.StageErr != nil {
		return r.StageErr
	}
	r.StageAllCalls++
	return nil
}

func (r *SpyWorktreeRepository) StatusSummary() (string, error) {
	return r.Status, nil
}

func (r *SpyWorktreeRepository) RecentLog(limit int) ([]entities.CommitInfo, error) {
	if limit < len(r.Log) {
		return r.Log[:limit], nil
	}
	return r.Log, nil
}
