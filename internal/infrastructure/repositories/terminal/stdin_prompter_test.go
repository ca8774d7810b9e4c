package terminal_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/docbatch/internal/infrastructure/repositories/terminal"
)

func TestStdinPrompterConfirm(t *testing.T) {
	t.Parallel()

	t.Run("should accept y and yes in any casing", func(t *testing.T) {
		t.Parallel()

		for _, answer := range []string{"y\n", "Y\n", "yes\n", "YES\n", " yes \n"} {
			// given
			out := &bytes.Buffer{}
			prompter := terminal.NewStdinPrompterWithStreams(strings.NewReader(answer), out)

			// when
			confirmed, err := prompter.Confirm("Commit all remaining changes?")

			// then
			require.NoError(t, err)
			assert.True(t, confirmed, "answer %q should confirm", answer)
			assert.Contains(t, out.String(), "Commit all remaining changes? [y/N]:")
		}
	})

	t.Run("should treat anything else as a decline", func(t *testing.T) {
		t.Parallel()

		for _, answer := range []string{"n\n", "no\n", "\n", "maybe\n"} {
			// given
			prompter := terminal.NewStdinPrompterWithStreams(
				strings.NewReader(answer), &bytes.Buffer{})

			// when
			confirmed, err := prompter.Confirm("Commit all remaining changes?")

			// then
			require.NoError(t, err)
			assert.False(t, confirmed, "answer %q should decline", answer)
		}
	})

	t.Run("should decline on end of input", func(t *testing.T) {
		t.Parallel()

		// given
		prompter := terminal.NewStdinPrompterWithStreams(
			strings.NewReader(""), &bytes.Buffer{})

		// when
		confirmed, err := prompter.Confirm("Commit all remaining changes?")

		// then
		require.NoError(t, err)
		assert.False(t, confirmed)
	})
}
