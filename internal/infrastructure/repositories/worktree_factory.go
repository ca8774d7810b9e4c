package repositories

import (
	domainRepos "github.com/rios0rios0/docbatch/internal/domain/repositories"
)

// WorktreeFactory opens the worktree repository rooted at the given path.
// Controllers resolve the path at execution time, so the concrete repository
// cannot be constructed when the container is built.
type WorktreeFactory func(path string) (domainRepos.WorktreeRepository, error)
