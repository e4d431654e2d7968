package game

import (
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

// IsLegal reports whether candidate may go on the discard pile. Wild ranks are
// always selectable; WildDrawFour carries the extra hand check in
// CanPlayWildDrawFour.
func IsLegal(candidate card.Card, currentColor color.Color, top card.Card, hasTop bool) bool {
	if candidate.IsWild() {
		return true
	}
	if !hasTop {
		return true
	}
	if candidate.Color() == currentColor {
		return true
	}
	return candidate.Rank() == top.Rank()
}

func CanPlayWildDrawFour(hand *Hand, currentColor color.Color) bool {
	return !hand.HasColor(currentColor)
}
