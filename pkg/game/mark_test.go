package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMark_Other(t *testing.T) {
	t.Run("Returns O for X", func(t *testing.T) {
		// Given: the X mark
		mark := MarkX

		// When: asking for the opposing mark
		other := mark.Other()

		// Then: it should be O
		assert.Equal(t, MarkO, other)
	})

	t.Run("Returns X for O", func(t *testing.T) {
		// Given: the O mark
		mark := MarkO

		// When: asking for the opposing mark
		other := mark.Other()

		// Then: it should be X
		assert.Equal(t, MarkX, other)
	})

	t.Run("Is its own inverse", func(t *testing.T) {
		// Given: both playable marks
		for _, mark := range []Mark{MarkX, MarkO} {
			// When: applying Other twice
			// Then: the original mark comes back
			assert.Equal(t, mark, mark.Other().Other())
		}
	})
}
