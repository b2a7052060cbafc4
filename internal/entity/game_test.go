package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMark_Opponent(t *testing.T) {
	t.Run("X and O are each other's opponent", func(t *testing.T) {
		// When: asking for the opponent of each player
		// Then: the other player's mark is returned
		assert.Equal(t, PlayerO, PlayerX.Opponent())
		assert.Equal(t, PlayerX, PlayerO.Opponent())
	})

	t.Run("Empty has no opponent", func(t *testing.T) {
		assert.Equal(t, Empty, Empty.Opponent())
	})
}

func TestMark_IsPlayer(t *testing.T) {
	assert.True(t, PlayerX.IsPlayer())
	assert.True(t, PlayerO.IsPlayer())
	assert.False(t, Empty.IsPlayer())
	assert.False(t, Mark("Z").IsPlayer())
}

func TestPhase_IsTerminal(t *testing.T) {
	t.Run("Won and TimedOut are terminal", func(t *testing.T) {
		assert.True(t, PhaseWon.IsTerminal())
		assert.True(t, PhaseTimedOut.IsTerminal())
	})

	t.Run("InProgress is not terminal", func(t *testing.T) {
		assert.False(t, PhaseInProgress.IsTerminal())
	})
}
