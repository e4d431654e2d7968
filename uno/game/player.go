package game

import (
	"github.com/ratel-online/uno-server/uno/card"
)

// Player is a seat at the table. The name is its identity.
type Player struct {
	name string
	hand *Hand
}

func newPlayer(name string) *Player {
	return &Player{
		name: name,
		hand: NewHand(),
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Hand() []card.Card {
	return p.hand.Cards()
}

func (p *Player) HandSize() int {
	return p.hand.Size()
}
