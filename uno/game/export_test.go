package game

import (
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

// Rig gathers every card back into the draw pile, then hands out exactly the
// given cards and puts top on the discard pile with currentColor in play.
func Rig(s *Session, hands map[string][]card.Card, top card.Card, currentColor color.Color) bool {
	s.Lock()
	defer s.Unlock()
	for _, player := range s.players {
		s.deck.PutUnder(player.hand.Clear())
	}
	s.deck.PutUnder(s.deck.pile.Cards())
	s.deck.pile.Clear()

	if !s.deck.take(top) {
		return false
	}
	s.deck.Discard(top)
	s.currentColor = currentColor
	for name, cards := range hands {
		index := s.indexOf(name)
		if index < 0 {
			return false
		}
		for _, wanted := range cards {
			if !s.deck.take(wanted) {
				return false
			}
			s.players[index].hand.AddCards([]card.Card{wanted})
		}
	}
	return true
}

// CardTotal counts every card the session holds, wherever it is.
func CardTotal(s *Session) int {
	s.RLock()
	defer s.RUnlock()
	total := s.deck.Size() + s.deck.Pile().Size()
	for _, player := range s.players {
		total += player.hand.Size()
	}
	return total
}

func TurnIndex(s *Session) int {
	s.RLock()
	defer s.RUnlock()
	return s.cycler.Current()
}

// DrainDrawPile moves the whole draw pile onto the discard pile, under the top card.
func DrainDrawPile(s *Session) {
	s.Lock()
	defer s.Unlock()
	top, _ := s.deck.pile.Top()
	s.deck.pile.cards = s.deck.pile.cards[:len(s.deck.pile.cards)-1]
	s.deck.pile.cards = append(s.deck.pile.cards, s.deck.cards...)
	s.deck.pile.cards = append(s.deck.pile.cards, top)
	s.deck.cards = s.deck.cards[:0]
}

// TakeDiscards removes every discard but the top from play entirely, which
// breaks the card count on purpose.
func TakeDiscards(s *Session) {
	s.Lock()
	defer s.Unlock()
	s.deck.pile.TakeUnderTop()
}
