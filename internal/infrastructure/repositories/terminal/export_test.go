package terminal

import "io"

// NewStdinPrompterWithStreams exports a stream-injecting constructor for testing.
func NewStdinPrompterWithStreams(in io.Reader, out io.Writer) *StdinPrompter {
	return &StdinPrompter{in: in, out: out}
}
