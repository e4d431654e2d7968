package game_test

import (
	"testing"

	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/game"
	"github.com/stretchr/testify/require"
)

func TestCards(t *testing.T) {
	pile := game.NewPile()
	pile.Add(card.NewNumberCard(color.Blue, 5))
	pile.Add(card.NewNumberCard(color.Green, 5))
	pile.Add(card.NewNumberCard(color.Green, 7))
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 5),
		card.NewNumberCard(color.Green, 7),
	}, pile.Cards())
	require.Equal(t, 3, pile.Size())
}

func TestTop(t *testing.T) {
	pile := game.NewPile()
	_, ok := pile.Top()
	require.False(t, ok)
	pile.Add(card.NewNumberCard(color.Blue, 5))
	pile.Add(card.NewNumberCard(color.Green, 7))
	top, ok := pile.Top()
	require.True(t, ok)
	require.Equal(t, card.NewNumberCard(color.Green, 7), top)
}

func TestTakeUnderTop(t *testing.T) {
	t.Run("keeps_only_the_top_card", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.NewNumberCard(color.Blue, 5))
		pile.Add(card.NewSkipCard(color.Red))
		pile.Add(card.NewNumberCard(color.Green, 7))

		under := pile.TakeUnderTop()
		require.Equal(t, []card.Card{
			card.NewNumberCard(color.Blue, 5),
			card.NewSkipCard(color.Red),
		}, under)
		require.Equal(t, []card.Card{card.NewNumberCard(color.Green, 7)}, pile.Cards())
	})

	t.Run("single_card_pile_gives_nothing", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.NewNumberCard(color.Blue, 5))
		require.Empty(t, pile.TakeUnderTop())
		require.Equal(t, 1, pile.Size())
	})
}
