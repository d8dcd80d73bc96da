package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplifyText(t *testing.T) {
	t.Run("replaces archaic terms", func(t *testing.T) {
		out := SimplifyText("WHEREAS the Lessor owns the property aforesaid, hereinafter called the premises.")

		assert.NotContains(t, strings.ToLower(out), "whereas")
		assert.NotContains(t, strings.ToLower(out), "aforesaid")
		assert.NotContains(t, strings.ToLower(out), "hereinafter")
		assert.Contains(t, out, "given that")
		assert.Contains(t, out, "mentioned above")
		assert.Contains(t, out, "from now on")
	})

	t.Run("breaks up over-long sentences", func(t *testing.T) {
		long := "The lessee shall pay the rent on the first day of each month, " +
			strings.Repeat("and shall maintain the premises in good order, ", 6) +
			"and shall return the premises at the end of the term."
		out := SimplifyText(long)

		for _, sentence := range strings.Split(out, ". ") {
			assert.LessOrEqual(t, len(sentence), maxSentenceLen+1)
		}
	})

	t.Run("short sentences pass through", func(t *testing.T) {
		in := "The rent is due monthly. The deposit is refundable."
		assert.Equal(t, in, SimplifyText(in))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", SimplifyText(""))
	})
}

func TestSplitSentences(t *testing.T) {
	t.Run("keeps terminal punctuation", func(t *testing.T) {
		sentences := splitSentences("First sentence. Second sentence! Third?")
		assert.Equal(t, []string{"First sentence.", "Second sentence!", "Third?"}, sentences)
	})

	t.Run("single sentence without trailing space", func(t *testing.T) {
		sentences := splitSentences("Only one.")
		assert.Equal(t, []string{"Only one."}, sentences)
	})

	t.Run("blank input", func(t *testing.T) {
		assert.Nil(t, splitSentences("   "))
	})
}
