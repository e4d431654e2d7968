package card

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ratel-online/uno-server/uno/card/action"
	"github.com/ratel-online/uno-server/uno/card/color"
)

type Rank int

const (
	Zero Rank = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	WildColorChange
	WildDrawFour
)

var rankNames = map[Rank]string{
	Skip:            "skip",
	Reverse:         "reverse",
	DrawTwo:         "draw-two",
	WildColorChange: "wild",
	WildDrawFour:    "wild-draw-four",
}

func (r Rank) IsNumber() bool {
	return r >= Zero && r <= Nine
}

func (r Rank) IsWild() bool {
	return r == WildColorChange || r == WildDrawFour
}

func (r Rank) Valid() bool {
	return r >= Zero && r <= WildDrawFour
}

func (r Rank) String() string {
	if r.IsNumber() {
		return strconv.Itoa(int(r))
	}
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rank(%d)", int(r))
}

// Card is a value type: two cards with the same color and rank are interchangeable.
type Card struct {
	color color.Color
	rank  Rank
}

func New(cardColor color.Color, rank Rank) Card {
	return Card{color: cardColor, rank: rank}
}

func NewNumberCard(cardColor color.Color, number int) Card {
	return Card{color: cardColor, rank: Rank(number)}
}

func NewSkipCard(cardColor color.Color) Card {
	return Card{color: cardColor, rank: Skip}
}

func NewReverseCard(cardColor color.Color) Card {
	return Card{color: cardColor, rank: Reverse}
}

func NewDrawTwoCard(cardColor color.Color) Card {
	return Card{color: cardColor, rank: DrawTwo}
}

func NewWildCard() Card {
	return Card{color: color.Wild, rank: WildColorChange}
}

func NewWildDrawFourCard() Card {
	return Card{color: color.Wild, rank: WildDrawFour}
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) IsWild() bool {
	return c.rank.IsWild()
}

// Valid reports whether the card belongs to the standard composition:
// wild ranks carry the wild color and every other rank a base color.
func (c Card) Valid() bool {
	if !c.rank.Valid() || !c.color.Valid() {
		return false
	}
	return c.rank.IsWild() == c.color.IsWild()
}

// Actions lists the effects of the card in resolution order.
func (c Card) Actions() []action.Action {
	switch c.rank {
	case Skip:
		return []action.Action{action.NewSkipTurnAction()}
	case Reverse:
		return []action.Action{action.NewReverseTurnsAction()}
	case DrawTwo:
		return []action.Action{
			action.NewDrawCardsAction(2),
			action.NewSkipTurnAction(),
		}
	case WildColorChange:
		return []action.Action{action.NewPickColorAction()}
	case WildDrawFour:
		return []action.Action{
			action.NewPickColorAction(),
			action.NewDrawCardsAction(4),
			action.NewSkipTurnAction(),
		}
	default:
		return []action.Action{}
	}
}

func (c Card) Equal(other Card) bool {
	return c == other
}

func (c Card) String() string {
	switch c.rank {
	case Skip:
		return c.color.Paint("(/)") + c.suffix()
	case Reverse:
		return c.color.Paint("<=>") + c.suffix()
	case DrawTwo:
		return c.color.Paint("+2!") + c.suffix()
	case WildColorChange:
		return "(*)"
	case WildDrawFour:
		return "+4!"
	default:
		return c.color.Paintf("[%d]", int(c.rank)) + c.suffix()
	}
}

func (c Card) suffix() string {
	return fmt.Sprintf("(%s)", c.color.Name())
}

type cardJSON struct {
	Color color.Color `json:"color"`
	Rank  string      `json:"rank"`
}

func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{Color: c.color, Rank: c.rank.String()})
}

// Standard returns the 108 cards of a full deck in a fixed order.
func Standard() []Card {
	cards := make([]Card, 0, 108)
	for _, cardColor := range color.Base {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createWildCards()...)
	return cards
}

func createColorCards(cardColor color.Color) []Card {
	zeroCard := NewNumberCard(cardColor, 0)
	skipCard := NewSkipCard(cardColor)
	reverseCard := NewReverseCard(cardColor)
	drawTwoCard := NewDrawTwoCard(cardColor)

	cards := []Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createWildCards() []Card {
	wildCard := NewWildCard()
	wildDrawFourCard := NewWildDrawFourCard()

	return []Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}
