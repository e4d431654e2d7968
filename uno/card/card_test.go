package card_test

import (
	"encoding/json"
	"testing"

	fatih "github.com/fatih/color"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/action"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandard(t *testing.T) {
	cards := card.Standard()
	require.Len(t, cards, 108)

	counts := make(map[card.Card]int)
	for _, c := range cards {
		require.True(t, c.Valid(), "%v", c)
		counts[c]++
	}

	for _, cardColor := range color.Base {
		assert.Equal(t, 1, counts[card.NewNumberCard(cardColor, 0)])
		for number := 1; number <= 9; number++ {
			assert.Equal(t, 2, counts[card.NewNumberCard(cardColor, number)])
		}
		assert.Equal(t, 2, counts[card.NewSkipCard(cardColor)])
		assert.Equal(t, 2, counts[card.NewReverseCard(cardColor)])
		assert.Equal(t, 2, counts[card.NewDrawTwoCard(cardColor)])
	}
	assert.Equal(t, 4, counts[card.NewWildCard()])
	assert.Equal(t, 4, counts[card.NewWildDrawFourCard()])
}

func TestValueEquality(t *testing.T) {
	require.Equal(t, card.NewSkipCard(color.Red), card.New(color.Red, card.Skip))
	require.True(t, card.NewNumberCard(color.Blue, 7).Equal(card.NewNumberCard(color.Blue, 7)))
	require.False(t, card.NewNumberCard(color.Blue, 7).Equal(card.NewNumberCard(color.Green, 7)))
	require.Equal(t, color.Wild, card.NewWildDrawFourCard().Color())
}

func TestValid(t *testing.T) {
	require.False(t, card.New(color.Red, card.WildDrawFour).Valid())
	require.False(t, card.New(color.Wild, card.Five).Valid())
	require.False(t, card.New(color.Red, card.Rank(42)).Valid())
	require.True(t, card.New(color.Wild, card.WildColorChange).Valid())
}

func TestActions(t *testing.T) {
	scenarios := []struct {
		description string
		card        card.Card
		expected    []action.Action
	}{
		{
			description: "number_card_has_no_actions",
			card:        card.NewNumberCard(color.Green, 3),
			expected:    []action.Action{},
		},
		{
			description: "skip_card_skips",
			card:        card.NewSkipCard(color.Green),
			expected:    []action.Action{action.NewSkipTurnAction()},
		},
		{
			description: "reverse_card_reverses",
			card:        card.NewReverseCard(color.Green),
			expected:    []action.Action{action.NewReverseTurnsAction()},
		},
		{
			description: "draw_two_card_draws_before_skipping",
			card:        card.NewDrawTwoCard(color.Green),
			expected:    []action.Action{action.NewDrawCardsAction(2), action.NewSkipTurnAction()},
		},
		{
			description: "wild_card_picks_color",
			card:        card.NewWildCard(),
			expected:    []action.Action{action.NewPickColorAction()},
		},
		{
			description: "wild_draw_four_picks_color_then_draws_four",
			card:        card.NewWildDrawFourCard(),
			expected: []action.Action{
				action.NewPickColorAction(),
				action.NewDrawCardsAction(4),
				action.NewSkipTurnAction(),
			},
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, scenario.card.Actions())
		})
	}
}

func TestString(t *testing.T) {
	fatih.NoColor = true

	require.Equal(t, "[7](blue)", card.NewNumberCard(color.Blue, 7).String())
	require.Equal(t, "+2!(red)", card.NewDrawTwoCard(color.Red).String())
	require.Equal(t, "(*)", card.NewWildCard().String())
	require.Equal(t, "+4!", card.NewWildDrawFourCard().String())
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(card.NewSkipCard(color.Yellow))
	require.NoError(t, err)
	require.JSONEq(t, `{"color":"yellow","rank":"skip"}`, string(data))
}
