package msg

import (
	"fmt"

	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/event"
)

var Message = MessageWriter{}

type MessageWriter struct{}

// Event renders what a table member sees for e. viewer is the reader's own name.
func (m MessageWriter) Event(viewer string, e event.Event) string {
	switch e := e.(type) {
	case event.PlayerRegistered:
		return m.PlayerJoined(e.PlayerName)
	case event.GameStarted:
		return m.FirstCardPlayed(e.Card)
	case event.TurnChanged:
		if e.PlayerName == viewer {
			return m.HumanPlayerTurnStarted(e.PlayerName)
		}
		return m.PlayerTurnStarted(e.PlayerName)
	case event.CardPlayed:
		return m.PlayerPlayedCard(e.PlayerName, e.Card)
	case event.CardDrawn:
		return m.PlayerDrewCards(e.PlayerName, 1)
	case event.CardsForced:
		return m.PlayerForcedToDraw(e.PlayerName, e.Amount)
	case event.AwaitingColor:
		if e.PlayerName == viewer {
			return m.HumanPlayerPickColor()
		}
		return m.PlayerPickingColor(e.PlayerName)
	case event.ColorChanged:
		return m.PlayerPickedColor(e.PlayerName, e.Color)
	case event.UnoCalled:
		return m.Uno(e.PlayerName)
	case event.PlayerPassed:
		return m.PlayerPassed(e.PlayerName)
	case event.GameOver:
		if e.Winner == "" {
			return m.GameAborted(e.Reason)
		}
		return m.WinnerFound(e.Winner)
	case event.PlayerLeft:
		return m.PlayerLeft(e.PlayerName)
	}
	return ""
}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return linef("First card is %s", card)
}

func (m MessageWriter) HumanPlayerDrewCard(card card.Card) string {
	return linef("You drew %s!", card)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return linef("It's your turn, %s!", playerName)
}

func (m MessageWriter) HumanPlayerPickColor() string {
	return linef("Pick a color: %s, %s, %s or %s",
		color.Red, color.Yellow, color.Green, color.Blue)
}

func (m MessageWriter) PlayerTurnStarted(playerName string) string {
	return linef("%s's turn.", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int) string {
	if amount == 1 {
		return linef("%s drew a card!", playerName)
	}
	return linef("%s drew %d cards!", playerName, amount)
}

func (m MessageWriter) PlayerForcedToDraw(playerName string, amount int) string {
	return linef("%s is forced to draw %d cards!", playerName, amount)
}

func (m MessageWriter) PlayerJoined(playerName string) string {
	return linef("%s joined the table.", playerName)
}

func (m MessageWriter) PlayerLeft(playerName string) string {
	return linef("%s left the table.", playerName)
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return linef("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickingColor(playerName string) string {
	return linef("%s is picking a color...", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return linef("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return linef("%s played %s!", playerName, card)
}

func (m MessageWriter) Uno(playerName string) string {
	return linef("%s has one card left. UNO!", playerName)
}

func (m MessageWriter) Welcome() string {
	return linef(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return linef("%s wins!", playerName)
}

func (m MessageWriter) GameAborted(reason string) string {
	return linef("Game over: %s.", reason)
}

func linef(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...) + "\n"
}
