package game_test

import (
	"testing"

	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/game"
	"github.com/stretchr/testify/require"
)

func TestAddCards(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	})
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	}, hand.Cards())
}

func TestEmpty(t *testing.T) {
	hand := game.NewHand()
	require.True(t, hand.Empty())
	hand.AddCards([]card.Card{card.NewWildCard()})
	require.False(t, hand.Empty())
}

func TestHandCard(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{card.NewSkipCard(color.Red)})
	c, ok := hand.Card(0)
	require.True(t, ok)
	require.Equal(t, card.NewSkipCard(color.Red), c)
	_, ok = hand.Card(1)
	require.False(t, ok)
	_, ok = hand.Card(-1)
	require.False(t, ok)
}

func TestPlayableIndexes(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 8),
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewReverseCard(color.Yellow),
		card.NewDrawTwoCard(color.Blue),
		card.NewWildDrawFourCard(),
	})
	top := card.NewNumberCard(color.Blue, 7)
	require.Equal(t, []int{0, 2, 3, 5}, hand.PlayableIndexes(color.Blue, top, true))
	require.Equal(t, []int{3, 4}, hand.PlayableIndexes(color.Yellow, card.NewWildCard(), true))
}

func TestRemoveAt(t *testing.T) {
	t.Run("keeps_the_order_of_remaining_cards", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{
			card.NewWildCard(),
			card.NewReverseCard(color.Yellow),
			card.NewDrawTwoCard(color.Blue),
		})
		removed, ok := hand.RemoveAt(1)
		require.True(t, ok)
		require.Equal(t, card.NewReverseCard(color.Yellow), removed)
		require.Equal(t, []card.Card{
			card.NewWildCard(),
			card.NewDrawTwoCard(color.Blue),
		}, hand.Cards())
	})

	t.Run("out_of_range_does_nothing", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{card.NewWildCard()})
		_, ok := hand.RemoveAt(3)
		require.False(t, ok)
		require.Equal(t, 1, hand.Size())
	})
}

func TestClear(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{card.NewWildCard(), card.NewSkipCard(color.Red)})
	cleared := hand.Clear()
	require.Len(t, cleared, 2)
	require.True(t, hand.Empty())
}

func TestSize(t *testing.T) {
	hand := game.NewHand()
	require.Equal(t, 0, hand.Size())
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewReverseCard(color.Yellow),
	})
	require.Equal(t, 3, hand.Size())
}
