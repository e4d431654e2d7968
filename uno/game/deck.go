package game

import (
	"math/rand"
	"time"

	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/card"
)

// Deck owns the draw pile and the discard pile. It is not safe for concurrent
// use; the Session serializes access to it.
type Deck struct {
	cards []card.Card
	pile  *Pile
	rand  *rand.Rand
}

func NewDeck() *Deck {
	return NewDeckWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func NewDeckWithRand(r *rand.Rand) *Deck {
	deck := &Deck{
		pile: NewPile(),
		rand: r,
	}
	deck.Reset()
	return deck
}

// Reset brings every card back into the draw pile, unshuffled.
func (d *Deck) Reset() {
	d.cards = card.Standard()
	d.pile.Clear()
}

func (d *Deck) Shuffle() {
	shuffleCards(d.rand, d.cards)
}

func (d *Deck) DrawOne() (card.Card, error) {
	if len(d.cards) == 0 {
		if err := d.reshuffle(); err != nil {
			return card.Card{}, err
		}
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}

// Draw takes amount cards, or none at all if the deck runs dry.
func (d *Deck) Draw(amount int) ([]card.Card, error) {
	cards := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		drawn, err := d.DrawOne()
		if err != nil {
			d.PutUnder(cards)
			return nil, err
		}
		cards = append(cards, drawn)
	}
	return cards, nil
}

func (d *Deck) Discard(card card.Card) {
	d.pile.Add(card)
}

func (d *Deck) TopDiscard() (card.Card, bool) {
	return d.pile.Top()
}

// PutUnder slides cards beneath the draw pile.
func (d *Deck) PutUnder(cards []card.Card) {
	if len(cards) == 0 {
		return
	}
	merged := make([]card.Card, 0, len(cards)+len(d.cards))
	merged = append(merged, cards...)
	d.cards = append(merged, d.cards...)
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Pile() *Pile {
	return d.pile
}

// reshuffle recycles the discard pile, minus its top card, into the draw pile.
func (d *Deck) reshuffle() error {
	under := d.pile.TakeUnderTop()
	if len(under) == 0 {
		return consts.ErrorsEmptyDeckCorruption
	}
	d.cards = append(d.cards, under...)
	d.Shuffle()
	return nil
}

// take pulls a specific card out of the draw pile.
func (d *Deck) take(wanted card.Card) bool {
	for index := len(d.cards) - 1; index >= 0; index-- {
		if d.cards[index] == wanted {
			d.cards = append(d.cards[:index], d.cards[index+1:]...)
			return true
		}
	}
	return false
}

func shuffleCards(r *rand.Rand, cards []card.Card) {
	r.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
