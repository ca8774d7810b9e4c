package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/docbatch/internal/domain/commands"
	"github.com/rios0rios0/docbatch/internal/domain/entities"
	infraRepos "github.com/rios0rios0/docbatch/internal/infrastructure/repositories"
)

// StatusController handles the "status" subcommand.
type StatusController struct {
	command commands.Status
	factory infraRepos.WorktreeFactory
}

// NewStatusController creates a new StatusController.
func NewStatusController(
	command commands.Status,
	factory infraRepos.WorktreeFactory,
) *StatusController {
	return &StatusController{command: command, factory: factory}
}

// GetBind returns the Cobra command metadata for the status controller.
func (it *StatusController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "status [path]",
		Short: "Show the working-tree status and recent commits",
		Long: `Print the working-tree status and the recent commit log for a
repository, the same summary every run ends with.`,
	}
}

// Execute prints the summary.
func (it *StatusController) Execute(_ *cobra.Command, args []string) error {
	repo, err := it.factory(repoDirFromArgs(args))
	if err != nil {
		return err
	}

	return it.command.Execute(repo)
}
