package commands

import (
	"github.com/rios0rios0/docbatch/internal/domain/repositories"
)

// Status is the interface for the status command.
type Status interface {
	Execute(repo repositories.WorktreeRepository) error
}

// StatusCommand prints the working-tree status and recent commit log, the
// same summary every run ends with.
type StatusCommand struct{}

// NewStatusCommand creates a new StatusCommand.
func NewStatusCommand() *StatusCommand {
	return &StatusCommand{}
}

// Execute prints the summary for the given repository.
func (it *StatusCommand) Execute(repo repositories.WorktreeRepository) error {
	return logWorktreeSummary(repo)
}
