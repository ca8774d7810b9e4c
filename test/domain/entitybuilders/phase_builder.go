//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/docbatch/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// PhaseBuilder helps create test phases with a fluent interface.
type PhaseBuilder struct {
	*testkit.BaseBuilder
	name    string
	mode    entities.PhaseMode
	message string
	paths   []string
}

// NewPhaseBuilder creates a new phase builder with sensible defaults.
func NewPhaseBuilder() *PhaseBuilder {
	return &PhaseBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-phase",
		mode:        entities.ModeGroup,
		message:     "docs: update test pages",
		paths:       []string{"a.mdx", "b.mdx"},
	}
}

// WithName sets the phase name.
func (b *PhaseBuilder) WithName(name string) *PhaseBuilder {
	b.name = name
	return b
}

// WithMode sets the phase mode.
func (b *PhaseBuilder) WithMode(mode entities.PhaseMode) *PhaseBuilder {
	b.mode = mode
	return b
}

// WithMessage sets the commit message.
func (b *PhaseBuilder) WithMessage(message string) *PhaseBuilder {
	b.message = message
	return b
}

// WithPaths sets the member paths.
func (b *PhaseBuilder) WithPaths(paths ...string) *PhaseBuilder {
	b.paths = paths
	return b
}

// Build creates the phase (satisfies testkit.Builder interface).
func (b *PhaseBuilder) Build() interface{} {
	return b.BuildPhase()
}

// BuildPhase creates the phase with a concrete return type.
func (b *PhaseBuilder) BuildPhase() entities.Phase {
	return entities.Phase{
		Name:    b.name,
		Mode:    b.mode,
		Message: b.message,
		Paths:   b.paths,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *PhaseBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-phase"
	b.mode = entities.ModeGroup
	b.message = "docs: update test pages"
	b.paths = []string{"a.mdx", "b.mdx"}
	return b
}

// Clone creates a deep copy of the PhaseBuilder.
func (b *PhaseBuilder) Clone() testkit.Builder {
	paths := make([]string, len(b.paths))
	copy(paths, b.paths)
	return &PhaseBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		mode:        b.mode,
		message:     b.message,
		paths:       paths,
	}
}
