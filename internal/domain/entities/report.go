package entities

// PhaseOutcome classifies what a single phase did.
type PhaseOutcome string

const (
	// OutcomeCommitted means the phase produced exactly one commit.
	OutcomeCommitted PhaseOutcome = "committed"
	// OutcomeSkipped means nothing in the phase had a diff (advisory).
	OutcomeSkipped PhaseOutcome = "skipped"
	// OutcomeDryRun means changes were detected but not applied.
	OutcomeDryRun PhaseOutcome = "dry-run"
)

// PhaseResult records what happened to one phase during a run.
type PhaseResult struct {
	Phase       Phase
	Outcome     PhaseOutcome
	CommitHash  string
	StagedPaths []string
	// SkippedPaths lists members that were missing or unchanged.
	SkippedPaths []string
}

// CatchAllOutcome records what the final sweep did.
type CatchAllOutcome struct {
	Asked      bool
	Confirmed  bool
	Committed  bool
	CommitHash string
}

// RunReport aggregates the results of a full plan execution.
type RunReport struct {
	Results  []PhaseResult
	CatchAll CatchAllOutcome
}

// CommitsCreated counts the commits produced by the run, catch-all included.
func (r RunReport) CommitsCreated() int {
	count := 0
	for _, result := range r.Results {
		if result.Outcome == OutcomeCommitted {
			count++
		}
	}
	if r.CatchAll.Committed {
		count++
	}
	return count
}

// FilesStaged counts every path staged across all phases.
func (r RunReport) FilesStaged() int {
	count := 0
	for _, result := range r.Results {
		count += len(result.StagedPaths)
	}
	return count
}

// CommitInfo is one entry of the recent-log summary printed after a run.
type CommitInfo struct {
	Hash    string
	Message string
}

// FileState describes a path's current standing against the last commit,
// as shown by the plan preview.
type FileState struct {
	Path    string
	Exists  bool
	Changed bool
	Tracked bool
}
