package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/docbatch/internal/domain/entities"
	"github.com/rios0rios0/docbatch/internal/domain/repositories"
)

// recentLogLimit is how many commits the post-run summary shows.
const recentLogLimit = 10

// Run is the interface for the run command (plan execution).
type Run interface {
	Execute(
		ctx context.Context,
		repo repositories.WorktreeRepository,
		settings *entities.Settings,
		opts RunOptions,
	) (*entities.RunReport, error)
}

// RunOptions holds runtime options for a single run.
type RunOptions struct {
	DryRun    bool
	Verbose   bool
	AssumeYes bool   // Answer the catch-all confirmation without prompting
	PhaseName string // If set, only process this phase (CLI override)
}

// RunCommand walks the plan in source order and produces at most one commit
// per phase. It keeps no state of its own: every diff check goes to the
// worktree repository immediately before use.
type RunCommand struct {
	prompter repositories.Prompter
}

// NewRunCommand creates a new RunCommand with the given prompter.
func NewRunCommand(prompter repositories.Prompter) *RunCommand {
	return &RunCommand{prompter: prompter}
}

// Execute runs every phase of the plan against the repository, then the
// catch-all sweep. Advisory conditions (missing path, no diff) are logged and
// skipped; any unexpected worktree error aborts the run immediately, leaving
// earlier commits in place.
func (it *RunCommand) Execute(
	ctx context.Context,
	repo repositories.WorktreeRepository,
	settings *entities.Settings,
	opts RunOptions,
) (*entities.RunReport, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	if opts.PhaseName != "" {
		if _, ok := settings.Plan.FindPhase(opts.PhaseName); !ok {
			return nil, fmt.Errorf("unknown phase %q", opts.PhaseName)
		}
	}

	report := &entities.RunReport{}

	for _, phase := range settings.Plan.Phases {
		// Skip if CLI filter is set and doesn't match
		if opts.PhaseName != "" && phase.Name != opts.PhaseName {
			continue
		}

		logger.Debugf("Processing phase %q (%s)", phase.Name, phase.Mode)

		result, err := it.runPhase(ctx, repo, settings, phase, opts)
		if err != nil {
			return report, fmt.Errorf("phase %q: %w", phase.Name, err)
		}
		report.Results = append(report.Results, result)
	}

	// The catch-all only makes sense after a full pass over the plan.
	if settings.Plan.CatchAll.Enabled && opts.PhaseName == "" {
		outcome, err := it.runCatchAll(ctx, repo, settings, opts)
		if err != nil {
			return report, err
		}
		report.CatchAll = outcome
	}

	logger.Infof(
		"Run complete: %d commits created, %d files staged",
		report.CommitsCreated(), report.FilesStaged(),
	)

	if summaryErr := logWorktreeSummary(repo); summaryErr != nil {
		return report, summaryErr
	}

	return report, nil
}

// runPhase dispatches a phase to its mode handler.
func (it *RunCommand) runPhase(
	ctx context.Context,
	repo repositories.WorktreeRepository,
	settings *entities.Settings,
	phase entities.Phase,
	opts RunOptions,
) (entities.PhaseResult, error) {
	switch phase.Mode {
	case entities.ModeSingle, entities.ModeGroup:
		return it.runCommitPhase(ctx, repo, settings, phase, opts)
	case entities.ModeRemove:
		return it.runRemovePhase(ctx, repo, settings, phase, opts)
	default:
		return entities.PhaseResult{}, fmt.Errorf("unknown phase mode %q", phase.Mode)
	}
}

// runCommitPhase stages every existing, changed member of the phase and
// creates exactly one commit when anything was staged. Single phases are the
// one-path special case of the same loop.
func (it *RunCommand) runCommitPhase(
	ctx context.Context,
	repo repositories.WorktreeRepository,
	settings *entities.Settings,
	phase entities.Phase,
	opts RunOptions,
) (entities.PhaseResult, error) {
	result := entities.PhaseResult{Phase: phase, Outcome: entities.OutcomeSkipped}

	var toStage []string
	for _, path := range phase.Paths {
		if !repo.Exists(path) {
			logger.Warnf("⚠️  %s does not exist, skipping", path)
			result.SkippedPaths = append(result.SkippedPaths, path)
			continue
		}

		changed, err := repo.HasDiff(path)
		if err != nil {
			return result, fmt.Errorf("failed to diff %q: %w", path, err)
		}
		if !changed {
			logger.Infof("⏭️  %s has no changes, skipping", path)
			result.SkippedPaths = append(result.SkippedPaths, path)
			continue
		}

		toStage = append(toStage, path)
	}

	if len(toStage) == 0 {
		logger.Infof("⏭️  Phase %q: nothing to commit", phase.Name)
		return result, nil
	}

	message := settings.FullMessage(phase.Message)

	if opts.DryRun {
		logger.Infof("📝 Phase %q: would commit %d file(s) as %q",
			phase.Name, len(toStage), message)
		result.Outcome = entities.OutcomeDryRun
		return result, nil
	}

	for _, path := range toStage {
		if err := repo.Stage(path); err != nil {
			return result, fmt.Errorf("failed to stage %q: %w", path, err)
		}
		logger.Infof("📦 Staged %s", path)
	}

	hash, err := repo.Commit(ctx, message)
	if err != nil {
		return result, fmt.Errorf("failed to commit: %w", err)
	}

	logger.Infof("✅ Committed %q (%s)", message, hash)
	result.Outcome = entities.OutcomeCommitted
	result.CommitHash = hash
	result.StagedPaths = toStage
	return result, nil
}

// runRemovePhase stages the deletion of every member still tracked in HEAD
// and commits the removal when anything was removed.
func (it *RunCommand) runRemovePhase(
	ctx context.Context,
	repo repositories.WorktreeRepository,
	settings *entities.Settings,
	phase entities.Phase,
	opts RunOptions,
) (entities.PhaseResult, error) {
	result := entities.PhaseResult{Phase: phase, Outcome: entities.OutcomeSkipped}

	var toRemove []string
	for _, path := range phase.Paths {
		tracked, err := repo.IsTracked(path)
		if err != nil {
			return result, fmt.Errorf("failed to check tracking of %q: %w", path, err)
		}
		if !tracked {
			logger.Infof("⏭️  %s is not tracked, skipping removal", path)
			result.SkippedPaths = append(result.SkippedPaths, path)
			continue
		}
		toRemove = append(toRemove, path)
	}

	if len(toRemove) == 0 {
		logger.Infof("⏭️  Phase %q: nothing to remove", phase.Name)
		return result, nil
	}

	message := settings.FullMessage(phase.Message)

	if opts.DryRun {
		logger.Infof("📝 Phase %q: would remove %d path(s) as %q",
			phase.Name, len(toRemove), message)
		result.Outcome = entities.OutcomeDryRun
		return result, nil
	}

	for _, path := range toRemove {
		if err := repo.Remove(path); err != nil {
			return result, fmt.Errorf("failed to remove %q: %w", path, err)
		}
		logger.Infof("🗑️  Removed %s", path)
	}

	hash, err := repo.Commit(ctx, message)
	if err != nil {
		return result, fmt.Errorf("failed to commit removal: %w", err)
	}

	logger.Infof("✅ Committed %q (%s)", message, hash)
	result.Outcome = entities.OutcomeCommitted
	result.CommitHash = hash
	result.StagedPaths = toRemove
	return result, nil
}

// runCatchAll sweeps whatever the phases left uncommitted into one final
// commit, after confirmation.
func (it *RunCommand) runCatchAll(
	ctx context.Context,
	repo repositories.WorktreeRepository,
	settings *entities.Settings,
	opts RunOptions,
) (entities.CatchAllOutcome, error) {
	outcome := entities.CatchAllOutcome{}

	pending, err := repo.HasPendingChanges()
	if err != nil {
		return outcome, fmt.Errorf("failed to check for pending changes: %w", err)
	}
	if !pending {
		logger.Info("⏭️  No remaining changes after all phases")
		return outcome, nil
	}

	message := settings.FullMessage(settings.Plan.CatchAll.Message)

	if opts.DryRun {
		logger.Infof("📝 Would commit all remaining changes as %q", message)
		return outcome, nil
	}

	confirmed := opts.AssumeYes
	if !confirmed {
		outcome.Asked = true
		confirmed, err = it.prompter.Confirm("Commit all remaining changes?")
		if err != nil {
			return outcome, fmt.Errorf("confirmation failed: %w", err)
		}
	}
	outcome.Confirmed = confirmed

	if !confirmed {
		logger.Info("⏭️  Leaving remaining changes uncommitted")
		return outcome, nil
	}

	if stageErr := repo.StageAll(); stageErr != nil {
		return outcome, fmt.Errorf("failed to stage remaining changes: %w", stageErr)
	}

	hash, commitErr := repo.Commit(ctx, message)
	if commitErr != nil {
		return outcome, fmt.Errorf("failed to commit remaining changes: %w", commitErr)
	}

	logger.Infof("✅ Committed %q (%s)", message, hash)
	outcome.Committed = true
	outcome.CommitHash = hash
	return outcome, nil
}

// logWorktreeSummary prints the repository status and recent log, the final
// step of every run.
func logWorktreeSummary(repo repositories.WorktreeRepository) error {
	status, err := repo.StatusSummary()
	if err != nil {
		return fmt.Errorf("failed to read worktree status: %w", err)
	}
	if status == "" {
		logger.Info("Working tree is clean")
	} else {
		logger.Infof("Working tree status:\n%s", status)
	}

	commits, err := repo.RecentLog(recentLogLimit)
	if err != nil {
		return fmt.Errorf("failed to read recent log: %w", err)
	}
	for _, commit := range commits {
		logger.Infof("  %s %s", commit.Hash, commit.Message)
	}

	return nil
}
