//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/docbatch/internal/domain/commands"
	"github.com/rios0rios0/docbatch/internal/domain/entities"
	"github.com/rios0rios0/docbatch/internal/domain/repositories"
)

// RunCall records a single invocation of Execute.
type RunCall struct {
	Repo     repositories.WorktreeRepository
	Settings *entities.Settings
	Opts     commands.RunOptions
}

// StubRunCommand implements commands.Run as a configurable spy.
type StubRunCommand struct {
	Report *entities.RunReport
	Err    error
	Calls  []RunCall
}

var _ commands.Run = (*StubRunCommand)(nil)

func (c *StubRunCommand) Execute(
	_ context.Context,
	repo repositories.WorktreeRepository,
	settings *entities.Settings,
	opts commands.RunOptions,
) (*entities.RunReport, error) {
	c.Calls = append(c.Calls, RunCall{Repo: repo, Settings: settings, Opts: opts})
	if c.Report == nil {
		return &entities.RunReport{}, c.Err
	}
	return c.Report, c.Err
}
