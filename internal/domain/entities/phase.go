package entities

import (
	"errors"
	"fmt"
)

// PhaseMode selects how a phase turns its paths into a commit.
type PhaseMode string

const (
	// ModeSingle commits exactly one file if it exists and has a diff.
	ModeSingle PhaseMode = "single"
	// ModeGroup stages every changed member and creates one commit for all of them.
	ModeGroup PhaseMode = "group"
	// ModeRemove deletes tracked paths from the index and commits the removal.
	ModeRemove PhaseMode = "remove"
)

// Phase is one labeled unit of work: a commit message plus the paths it covers.
// Phases are processed in plan order, producing at most one commit each.
type Phase struct {
	Name    string    `yaml:"name"`
	Mode    PhaseMode `yaml:"mode"`
	Message string    `yaml:"message"`
	Paths   []string  `yaml:"paths"`
}

// CatchAll configures the final sweep over whatever the phases left uncommitted.
type CatchAll struct {
	Enabled bool   `yaml:"enabled"`
	Message string `yaml:"message"`
}

// Plan is the ordered list of phases plus the catch-all policy.
type Plan struct {
	Phases   []Phase  `yaml:"phases"`
	CatchAll CatchAll `yaml:"catch_all"`
}

// Validate checks a single phase for structural problems.
func (p Phase) Validate() error {
	if p.Name == "" {
		return errors.New("phase name is required")
	}
	if p.Message == "" {
		return fmt.Errorf("phase %q: message is required", p.Name)
	}
	if len(p.Paths) == 0 {
		return fmt.Errorf("phase %q: at least one path is required", p.Name)
	}
	switch p.Mode {
	case ModeSingle:
		if len(p.Paths) != 1 {
			return fmt.Errorf("phase %q: mode %q takes exactly one path, got %d",
				p.Name, ModeSingle, len(p.Paths))
		}
	case ModeGroup, ModeRemove:
		// any number of paths
	default:
		return fmt.Errorf("phase %q: unknown mode %q", p.Name, p.Mode)
	}
	for i, path := range p.Paths {
		if path == "" {
			return fmt.Errorf("phase %q: paths[%d] is empty", p.Name, i)
		}
	}
	return nil
}

// Validate checks the whole plan: every phase valid, names unique, and a
// catch-all message present when the catch-all is enabled.
func (p Plan) Validate() error {
	if len(p.Phases) == 0 {
		return errors.New("plan must have at least one phase")
	}

	seen := make(map[string]bool, len(p.Phases))
	for _, phase := range p.Phases {
		if err := phase.Validate(); err != nil {
			return err
		}
		if seen[phase.Name] {
			return fmt.Errorf("duplicate phase name %q", phase.Name)
		}
		seen[phase.Name] = true
	}

	if p.CatchAll.Enabled && p.CatchAll.Message == "" {
		return errors.New("catch_all.message is required when catch_all is enabled")
	}

	return nil
}

// FindPhase returns the phase with the given name, or false if absent.
func (p Plan) FindPhase(name string) (Phase, bool) {
	for _, phase := range p.Phases {
		if phase.Name == name {
			return phase, true
		}
	}
	return Phase{}, false
}
