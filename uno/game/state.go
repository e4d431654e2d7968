package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

type Phase int

const (
	PhaseLobby Phase = iota
	PhaseActive
	PhaseAwaitingColor
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseLobby:
		return "lobby"
	case PhaseActive:
		return "active"
	case PhaseAwaitingColor:
		return "awaiting-color"
	case PhaseFinished:
		return "finished"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// State is a copy of the table as one player is allowed to see it.
type State struct {
	Phase            Phase          `json:"phase"`
	LastPlayedCard   card.Card      `json:"lastPlayedCard"`
	HasPlayedCard    bool           `json:"hasPlayedCard"`
	CurrentColor     color.Color    `json:"currentColor"`
	CurrentPlayer    string         `json:"currentPlayer"`
	Direction        Direction      `json:"direction"`
	PlayerSequence   []string       `json:"playerSequence"`
	PlayerHandCounts map[string]int `json:"playerHandCounts"`
	ViewerHand       []card.Card    `json:"viewerHand"`
	PlayableIndexes  []int          `json:"playableIndexes"`
	DrawPileSize     int            `json:"drawPileSize"`
	DiscardPileSize  int            `json:"discardPileSize"`
	Winner           string         `json:"winner,omitempty"`
}

func (s State) String() string {
	var lines []string
	if s.Phase == PhaseLobby {
		lines = append(lines, fmt.Sprintf("Waiting to start: %s", strings.Join(s.PlayerSequence, ", ")))
		return strings.Join(lines, "\n")
	}
	if s.HasPlayedCard {
		lines = append(lines, fmt.Sprintf("Last played card: %s, color %s", s.LastPlayedCard, s.CurrentColor))
	}

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		if playerName == s.CurrentPlayer && s.Phase != PhaseFinished {
			playerStatus = "*" + playerStatus
		}
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", s.Direction, strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Draw pile: %d card(s), discard pile: %d card(s)", s.DrawPileSize, s.DiscardPileSize))

	if len(s.ViewerHand) > 0 {
		var cards []string
		for index, cardInHand := range s.ViewerHand {
			cards = append(cards, fmt.Sprintf("%d:%s", index, cardInHand))
		}
		lines = append(lines, fmt.Sprintf("Your hand: %s", strings.Join(cards, " ")))
	}
	if len(s.PlayableIndexes) > 0 {
		lines = append(lines, fmt.Sprintf("Playable: %v", s.PlayableIndexes))
	}
	if s.Phase == PhaseFinished && s.Winner != "" {
		lines = append(lines, fmt.Sprintf("Winner: %s", s.Winner))
	}

	return strings.Join(lines, "\n")
}
