//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/docbatch/internal/domain/repositories"
)

// StubPrompter implements repositories.Prompter with a canned answer.
type StubPrompter struct {
	Answer    bool
	Err       error
	Questions []string
}

var _ repositories.Prompter = (*StubPrompter)(nil)

func (p *StubPrompter) Confirm(question string) (bool, error) {
	p.Questions = append(p.Questions, question)
	return p.Answer, p.Err
}
