package repositories

// Prompter abstracts the interactive yes/no confirmation so the catch-all
// sweep can be driven deterministically in tests.
type Prompter interface {
	// Confirm asks the question and blocks until an answer is supplied.
	Confirm(question string) (bool, error)
}
