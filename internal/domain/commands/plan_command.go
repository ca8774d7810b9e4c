package commands

import (
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/docbatch/internal/domain/entities"
	"github.com/rios0rios0/docbatch/internal/domain/repositories"
)

// PhasePreview pairs a phase with the current state of each of its members.
type PhasePreview struct {
	Phase  entities.Phase
	States []entities.FileState
}

// Plan is the interface for the plan command (read-only preview).
type Plan interface {
	Execute(
		repo repositories.WorktreeRepository,
		settings *entities.Settings,
	) ([]PhasePreview, error)
}

// PlanCommand resolves the plan against the working tree without staging or
// committing anything.
type PlanCommand struct{}

// NewPlanCommand creates a new PlanCommand.
func NewPlanCommand() *PlanCommand {
	return &PlanCommand{}
}

// Execute reports, per phase, which members would be committed, removed, or
// skipped if the plan ran right now.
func (it *PlanCommand) Execute(
	repo repositories.WorktreeRepository,
	settings *entities.Settings,
) ([]PhasePreview, error) {
	previews := make([]PhasePreview, 0, len(settings.Plan.Phases))

	for _, phase := range settings.Plan.Phases {
		preview := PhasePreview{Phase: phase}

		for _, path := range phase.Paths {
			state, err := resolveFileState(repo, path)
			if err != nil {
				return nil, fmt.Errorf("phase %q: %w", phase.Name, err)
			}
			preview.States = append(preview.States, state)
		}

		previews = append(previews, preview)
		logPhasePreview(settings, preview)
	}

	if settings.Plan.CatchAll.Enabled {
		logger.Infof("Catch-all: %q", settings.FullMessage(settings.Plan.CatchAll.Message))
	}

	return previews, nil
}

// resolveFileState queries the worktree for one path's current standing.
func resolveFileState(
	repo repositories.WorktreeRepository,
	path string,
) (entities.FileState, error) {
	state := entities.FileState{Path: path, Exists: repo.Exists(path)}

	changed, err := repo.HasDiff(path)
	if err != nil {
		return state, fmt.Errorf("failed to diff %q: %w", path, err)
	}
	state.Changed = changed

	tracked, err := repo.IsTracked(path)
	if err != nil {
		return state, fmt.Errorf("failed to check tracking of %q: %w", path, err)
	}
	state.Tracked = tracked

	return state, nil
}

// logPhasePreview prints one phase of the preview.
func logPhasePreview(settings *entities.Settings, preview PhasePreview) {
	phase := preview.Phase
	logger.Infof("Phase %q (%s): %q", phase.Name, phase.Mode, settings.FullMessage(phase.Message))

	for _, state := range preview.States {
		switch {
		case phase.Mode == entities.ModeRemove && state.Tracked:
			logger.Infof("  🗑️  %s (tracked, would be removed)", state.Path)
		case phase.Mode == entities.ModeRemove:
			logger.Infof("  ⏭️  %s (not tracked)", state.Path)
		case !state.Exists:
			logger.Infof("  ⚠️  %s (missing)", state.Path)
		case state.Changed:
			logger.Infof("  📦 %s (changed, would be committed)", state.Path)
		default:
			logger.Infof("  ⏭️  %s (no changes)", state.Path)
		}
	}
}
