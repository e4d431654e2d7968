package game_test

import (
	"testing"

	"github.com/ratel-online/uno-server/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 1, cycler.Current())
	cycler.Next()
	assert.Equal(t, 2, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 1, cycler.Current())
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 3, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
}

func TestNext(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	assert.Equal(t, 3, cycler.Next())
	assert.Equal(t, 0, cycler.Next())
}

func TestPeek(t *testing.T) {
	cycler := game.NewCycler(3)
	assert.Equal(t, 1, cycler.Peek())
	assert.Equal(t, 0, cycler.Current())
	cycler.Reverse()
	assert.Equal(t, 2, cycler.Peek())
	assert.Equal(t, 0, cycler.Current())
}

func TestReverse(t *testing.T) {
	cycler := game.NewCycler(4)
	require.Equal(t, game.Forward, cycler.Direction())
	cycler.Reverse()
	require.Equal(t, game.Backward, cycler.Direction())
	assert.Equal(t, 3, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	cycler.Reverse()
	require.Equal(t, game.Forward, cycler.Direction())
	assert.Equal(t, 3, cycler.Next())
}

func TestReset(t *testing.T) {
	cycler := game.NewCycler(4)
	cycler.Next()
	cycler.Reverse()
	cycler.Reset(3)
	require.Equal(t, 0, cycler.Current())
	require.Equal(t, game.Forward, cycler.Direction())
	require.Equal(t, 3, cycler.Size())
}

func TestRemove(t *testing.T) {
	t.Run("seat_before_current_shifts_current", func(t *testing.T) {
		cycler := game.NewCycler(4)
		cycler.Next()
		cycler.Next()
		cycler.Remove(0)
		require.Equal(t, 3, cycler.Size())
		require.Equal(t, 1, cycler.Current())
	})

	t.Run("seat_after_current_keeps_current", func(t *testing.T) {
		cycler := game.NewCycler(4)
		cycler.Next()
		cycler.Remove(3)
		require.Equal(t, 1, cycler.Current())
	})

	t.Run("current_seat_forward_hands_turn_to_next", func(t *testing.T) {
		cycler := game.NewCycler(4)
		cycler.Next()
		cycler.Next()
		cycler.Next()
		cycler.Remove(3)
		require.Equal(t, 0, cycler.Current())
	})

	t.Run("current_seat_backward_hands_turn_to_previous", func(t *testing.T) {
		cycler := game.NewCycler(4)
		cycler.Next()
		cycler.Next()
		cycler.Reverse()
		cycler.Remove(2)
		require.Equal(t, 1, cycler.Current())
	})

	t.Run("current_seat_zero_backward_wraps", func(t *testing.T) {
		cycler := game.NewCycler(3)
		cycler.Reverse()
		cycler.Remove(0)
		require.Equal(t, 1, cycler.Current())
		require.Equal(t, 2, cycler.Size())
	})
}
