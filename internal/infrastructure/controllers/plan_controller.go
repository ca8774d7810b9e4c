package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/docbatch/internal/domain/commands"
	"github.com/rios0rios0/docbatch/internal/domain/entities"
	infraRepos "github.com/rios0rios0/docbatch/internal/infrastructure/repositories"
)

// PlanController handles the "plan" subcommand (read-only preview).
type PlanController struct {
	command commands.Plan
	factory infraRepos.WorktreeFactory
}

// NewPlanController creates a new PlanController.
func NewPlanController(command commands.Plan, factory infraRepos.WorktreeFactory) *PlanController {
	return &PlanController{command: command, factory: factory}
}

// GetBind returns the Cobra command metadata for the plan controller.
func (it *PlanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "plan [path]",
		Short: "Preview the phase plan without committing",
		Long: `Resolve the phase plan against the working tree and show, per
phase, which members would be committed, removed, or skipped.
Nothing is staged or committed.`,
	}
}

// Execute previews the plan.
func (it *PlanController) Execute(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	settings, err := loadSettings(configPath)
	if err != nil {
		return err
	}

	repo, err := it.factory(repoDirFromArgs(args))
	if err != nil {
		return err
	}

	_, previewErr := it.command.Execute(repo, settings)
	return previewErr
}
