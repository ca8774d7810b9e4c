package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/docbatch/internal/domain/repositories"
	"github.com/rios0rios0/docbatch/internal/infrastructure/repositories/gitrepo"
	"github.com/rios0rios0/docbatch/internal/infrastructure/repositories/terminal"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register the worktree factory backed by go-git
	if err := container.Provide(func() WorktreeFactory {
		return func(path string) (domainRepos.WorktreeRepository, error) {
			return gitrepo.NewGitWorktreeRepository(path)
		}
	}); err != nil {
		return err
	}

	// Register the interactive prompter
	if err := container.Provide(terminal.NewStdinPrompter); err != nil {
		return err
	}
	if err := container.Provide(func(impl *terminal.StdinPrompter) domainRepos.Prompter {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
