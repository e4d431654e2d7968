package game

import (
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Card(index int) (card.Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, false
	}
	return h.cards[index], true
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) HasColor(c color.Color) bool {
	for _, cardInHand := range h.cards {
		if cardInHand.Color() == c {
			return true
		}
	}
	return false
}

// PlayableIndexes lists the positions of cards that could legally be played
// on top, including the wild draw four restriction.
func (h *Hand) PlayableIndexes(currentColor color.Color, top card.Card, hasTop bool) []int {
	var indexes []int
	for index, candidate := range h.cards {
		if !IsLegal(candidate, currentColor, top, hasTop) {
			continue
		}
		if candidate.Rank() == card.WildDrawFour && !CanPlayWildDrawFour(h, currentColor) {
			continue
		}
		indexes = append(indexes, index)
	}
	return indexes
}

// RemoveAt takes out the card at index, keeping the order of the rest.
func (h *Hand) RemoveAt(index int) (card.Card, bool) {
	removed, ok := h.Card(index)
	if !ok {
		return card.Card{}, false
	}
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed, true
}

// Clear empties the hand and returns what it held.
func (h *Hand) Clear() []card.Card {
	cards := h.cards
	h.cards = make([]card.Card, 0, 7)
	return cards
}

func (h *Hand) Size() int {
	return len(h.cards)
}
