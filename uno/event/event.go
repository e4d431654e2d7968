package event

import (
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

type Kind string

const (
	KindPlayerRegistered Kind = "player_registered"
	KindGameStarted      Kind = "game_started"
	KindTurnChanged      Kind = "turn_changed"
	KindCardPlayed       Kind = "card_played"
	KindCardDrawn        Kind = "card_drawn"
	KindCardsForced      Kind = "cards_forced"
	KindAwaitingColor    Kind = "awaiting_color"
	KindColorChanged     Kind = "color_changed"
	KindUnoCalled        Kind = "uno_called"
	KindPlayerPassed     Kind = "player_passed"
	KindGameOver         Kind = "game_over"
	KindPlayerLeft       Kind = "player_left"
)

// Event is closed to this package; switch on the concrete types.
type Event interface {
	Kind() Kind
	event()
}

type PlayerRegistered struct {
	PlayerName string
}

type GameStarted struct {
	Card  card.Card
	Color color.Color
}

type TurnChanged struct {
	PlayerName string
}

type CardPlayed struct {
	PlayerName string
	Card       card.Card
}

// CardDrawn carries no card, the drawer learns it from the command result.
type CardDrawn struct {
	PlayerName string
}

// CardsForced is a penalty draw from DrawTwo or WildDrawFour.
type CardsForced struct {
	PlayerName string
	Amount     int
}

type AwaitingColor struct {
	PlayerName string
}

type ColorChanged struct {
	PlayerName string
	Color      color.Color
}

type UnoCalled struct {
	PlayerName string
}

type PlayerPassed struct {
	PlayerName string
}

// GameOver has an empty Winner when the game was aborted.
type GameOver struct {
	Winner string
	Reason string
}

type PlayerLeft struct {
	PlayerName string
}

func (PlayerRegistered) Kind() Kind { return KindPlayerRegistered }
func (GameStarted) Kind() Kind      { return KindGameStarted }
func (TurnChanged) Kind() Kind      { return KindTurnChanged }
func (CardPlayed) Kind() Kind       { return KindCardPlayed }
func (CardDrawn) Kind() Kind        { return KindCardDrawn }
func (CardsForced) Kind() Kind      { return KindCardsForced }
func (AwaitingColor) Kind() Kind    { return KindAwaitingColor }
func (ColorChanged) Kind() Kind     { return KindColorChanged }
func (UnoCalled) Kind() Kind        { return KindUnoCalled }
func (PlayerPassed) Kind() Kind     { return KindPlayerPassed }
func (GameOver) Kind() Kind         { return KindGameOver }
func (PlayerLeft) Kind() Kind       { return KindPlayerLeft }

func (PlayerRegistered) event() {}
func (GameStarted) event()      {}
func (TurnChanged) event()      {}
func (CardPlayed) event()       {}
func (CardDrawn) event()        {}
func (CardsForced) event()      {}
func (AwaitingColor) event()    {}
func (ColorChanged) event()     {}
func (UnoCalled) event()        {}
func (PlayerPassed) event()     {}
func (GameOver) event()         {}
func (PlayerLeft) event()       {}
