package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/docbatch/internal/domain/commands"
	"github.com/rios0rios0/docbatch/internal/domain/entities"
	infraRepos "github.com/rios0rios0/docbatch/internal/infrastructure/repositories"
)

// RunController handles the root command with a path argument (and the "run"
// subcommand): it executes the full phase plan against a repository.
type RunController struct {
	command commands.Run
	factory infraRepos.WorktreeFactory
}

// NewRunController creates a new RunController.
func NewRunController(command commands.Run, factory infraRepos.WorktreeFactory) *RunController {
	return &RunController{command: command, factory: factory}
}

// GetBind returns the Cobra command metadata for the run controller.
func (it *RunController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "run [path]",
		Short: "Execute the phase plan against a repository",
		Long: `Execute the phase plan against a documentation repository.

Each phase stages only the files that exist and differ from the last
commit, then creates one commit with the phase's message. Remaining
changes are swept into a final catch-all commit after confirmation.`,
	}
}

// Execute runs the plan. It fails fast when the path is not a repository
// root, so nothing is ever staged outside a repository.
func (it *RunController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	configPath, _ := cmd.Flags().GetString("config")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	assumeYes, _ := cmd.Flags().GetBool("yes")
	verbose, _ := cmd.Flags().GetBool("verbose")
	phaseName, _ := cmd.Flags().GetString("phase")

	settings, err := loadSettings(configPath)
	if err != nil {
		return err
	}

	repo, err := it.factory(repoDirFromArgs(args))
	if err != nil {
		return err
	}

	_, runErr := it.command.Execute(ctx, repo, settings, commands.RunOptions{
		DryRun:    dryRun,
		Verbose:   verbose,
		AssumeYes: assumeYes,
		PhaseName: phaseName,
	})
	return runErr
}

// AddFlags adds the run-specific flags to the given Cobra command.
func (it *RunController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("phase", "", "Only process the phase with this name")
}
