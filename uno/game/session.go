package game

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/action"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/event"
)

const (
	ReasonWon                 = "won"
	ReasonInsufficientPlayers = "insufficient players"
	ReasonDeckCorrupted       = "deck corrupted"
)

// Session is one table: a deck, an ordered roster and a turn pointer. Every
// command runs under the session lock; events raised while it is held are
// handed to the dispatcher before the lock is released, so all listeners see
// them in the order they happened.
type Session struct {
	sync.RWMutex
	players      []*Player
	cycler       *Cycler
	deck         *Deck
	phase        Phase
	currentColor color.Color
	hasActed     bool
	pendingActor int
	pendingCard  card.Card
	winner       string
	outbox       []event.Event
	dispatcher   *event.Dispatcher
}

func NewSession() *Session {
	return NewSessionWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func NewSessionWithRand(r *rand.Rand) *Session {
	return &Session{
		players:      make([]*Player, 0, consts.MaxPlayers),
		cycler:       NewCycler(0),
		deck:         NewDeckWithRand(r),
		phase:        PhaseLobby,
		pendingActor: -1,
		dispatcher:   event.NewDispatcher(),
	}
}

func (s *Session) Subscribe(listener event.Listener) {
	s.dispatcher.Subscribe(listener)
}

func (s *Session) Unsubscribe(listener event.Listener) {
	s.dispatcher.Unsubscribe(listener)
}

// Flush waits until listeners have received every event raised so far.
func (s *Session) Flush() {
	s.dispatcher.Flush()
}

func (s *Session) Close() {
	s.dispatcher.Close()
}

func (s *Session) mutate(fn func() error) error {
	s.Lock()
	defer s.Unlock()
	err := fn()
	events := s.outbox
	s.outbox = nil
	s.dispatcher.Publish(events...)
	return err
}

func (s *Session) emit(e event.Event) {
	s.outbox = append(s.outbox, e)
}

func (s *Session) RegisterPlayer(name string) error {
	name = strings.TrimSpace(name)
	return s.mutate(func() error {
		if s.phase != PhaseLobby {
			return nil
		}
		if name == "" {
			return consts.ErrorsInvalidPlayerName
		}
		if s.indexOf(name) >= 0 {
			return consts.ErrorsPlayerNameTaken
		}
		if len(s.players) >= consts.MaxPlayers {
			return consts.ErrorsRoomPlayersIsFull
		}
		s.players = append(s.players, newPlayer(name))
		s.emit(event.PlayerRegistered{PlayerName: name})
		return nil
	})
}

func (s *Session) Start() error {
	return s.mutate(func() error {
		switch s.phase {
		case PhaseActive, PhaseAwaitingColor:
			return nil
		case PhaseFinished:
			return consts.ErrorsInvalidPhase
		}
		if len(s.players) < consts.MinPlayers {
			return consts.ErrorsInsufficientPlayers
		}
		return s.deal()
	})
}

// Restart deals a fresh game to the same roster.
func (s *Session) Restart() error {
	return s.mutate(func() error {
		if s.phase != PhaseFinished {
			return consts.ErrorsInvalidPhase
		}
		if len(s.players) < consts.MinPlayers {
			return consts.ErrorsInsufficientPlayers
		}
		return s.deal()
	})
}

func (s *Session) deal() error {
	s.deck.Reset()
	s.deck.Shuffle()
	for _, player := range s.players {
		player.hand.Clear()
		cards, err := s.deck.Draw(consts.HandSize)
		if err != nil {
			return s.corrupt(err)
		}
		player.hand.AddCards(cards)
	}

	var first card.Card
	for {
		drawn, err := s.deck.DrawOne()
		if err != nil {
			return s.corrupt(err)
		}
		s.deck.Discard(drawn)
		if !drawn.IsWild() {
			first = drawn
			break
		}
	}

	s.currentColor = first.Color()
	s.phase = PhaseActive
	s.cycler.Reset(len(s.players))
	s.hasActed = false
	s.pendingActor = -1
	s.winner = ""
	log.Infof("uno game started with %d players, first card %s\n", len(s.players), first.Rank())
	s.emit(event.GameStarted{Card: first, Color: first.Color()})
	s.emit(event.TurnChanged{PlayerName: s.current().name})
	return nil
}

// PlayCard plays the card at index from the named player's hand. Wild cards
// stop in PhaseAwaitingColor until ChooseColor resolves them.
func (s *Session) PlayCard(name string, index int) (card.Card, error) {
	var played card.Card
	err := s.mutate(func() error {
		if err := s.checkActive(); err != nil {
			return err
		}
		if err := s.checkTurn(name); err != nil {
			return err
		}
		actor := s.current()
		candidate, ok := actor.hand.Card(index)
		if !ok {
			return consts.ErrorsInvalidCardIndex
		}
		top, hasTop := s.deck.TopDiscard()
		if !IsLegal(candidate, s.currentColor, top, hasTop) {
			return consts.ErrorsIllegalPlay
		}
		if candidate.Rank() == card.WildDrawFour && !CanPlayWildDrawFour(actor.hand, s.currentColor) {
			return consts.ErrorsIllegalPlay
		}

		actor.hand.RemoveAt(index)
		s.deck.Discard(candidate)
		s.hasActed = true
		s.pendingActor = s.cycler.Current()
		played = candidate

		if candidate.IsWild() {
			s.phase = PhaseAwaitingColor
			s.pendingCard = candidate
			s.emit(event.AwaitingColor{PlayerName: actor.name})
			return nil
		}

		s.currentColor = candidate.Color()
		if err := s.resolve(candidate); err != nil {
			return err
		}
		if s.finishIfWon(actor) {
			return nil
		}
		s.emit(event.CardPlayed{PlayerName: actor.name, Card: candidate})
		return nil
	})
	return played, err
}

func (s *Session) ChooseColor(name string, chosen color.Color) error {
	return s.mutate(func() error {
		if s.phase != PhaseAwaitingColor {
			return consts.ErrorsInvalidColorChoice
		}
		actor := s.players[s.pendingActor]
		if actor.name != name {
			return consts.ErrorsNotYourTurn
		}
		if !chosen.Valid() || chosen.IsWild() {
			return consts.ErrorsInvalidColorChoice
		}

		s.currentColor = chosen
		s.phase = PhaseActive
		s.hasActed = true
		if err := s.resolve(s.pendingCard); err != nil {
			return err
		}
		if s.finishIfWon(actor) {
			return nil
		}
		s.emit(event.ColorChanged{PlayerName: actor.name, Color: chosen})
		return nil
	})
}

// resolve applies a played card's actions and then moves the turn on unless
// an action already did. It is shared by plain plays and color choices.
func (s *Session) resolve(played card.Card) error {
	actor := s.pendingActor
	advanced := false
	for _, cardAction := range played.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			victim := s.players[s.cycler.Peek()]
			cards, err := s.deck.Draw(cardAction.Amount())
			if err != nil {
				return s.corrupt(err)
			}
			victim.hand.AddCards(cards)
			s.emit(event.CardsForced{PlayerName: victim.name, Amount: len(cards)})
		case action.SkipTurnAction:
			s.advance()
			s.advance()
			advanced = true
		case action.ReverseTurnsAction:
			s.cycler.Reverse()
			if len(s.players) == 2 {
				s.advance()
				s.advance()
				advanced = true
			}
		}
	}
	if !advanced {
		s.advance()
	}
	if s.cycler.Current() == actor {
		s.hasActed = true
	}
	return nil
}

// finishIfWon ends the game when the actor has no cards left and otherwise
// announces a last card.
func (s *Session) finishIfWon(actor *Player) bool {
	s.pendingActor = -1
	if actor.hand.Empty() {
		s.phase = PhaseFinished
		s.winner = actor.name
		log.Infof("uno game won by %s\n", actor.name)
		s.emit(event.GameOver{Winner: actor.name, Reason: ReasonWon})
		return true
	}
	if actor.hand.Size() == 1 {
		s.emit(event.UnoCalled{PlayerName: actor.name})
	}
	return false
}

// DrawCard gives the current player one card. The turn does not move.
func (s *Session) DrawCard(name string) (card.Card, error) {
	var drawn card.Card
	err := s.mutate(func() error {
		if err := s.checkActive(); err != nil {
			return err
		}
		if err := s.checkTurn(name); err != nil {
			return err
		}
		if s.hasActed {
			return consts.ErrorsAlreadyActed
		}
		c, err := s.deck.DrawOne()
		if err != nil {
			return s.corrupt(err)
		}
		s.current().hand.AddCards([]card.Card{c})
		s.hasActed = true
		drawn = c
		s.emit(event.CardDrawn{PlayerName: name})
		return nil
	})
	return drawn, err
}

func (s *Session) PassTurn(name string) error {
	return s.mutate(func() error {
		if err := s.checkActive(); err != nil {
			return err
		}
		if err := s.checkTurn(name); err != nil {
			return err
		}
		if !s.hasActed {
			return consts.ErrorsMustActFirst
		}
		s.emit(event.PlayerPassed{PlayerName: name})
		s.advance()
		return nil
	})
}

// Disconnect removes a player in any phase. Their cards go under the draw pile.
func (s *Session) Disconnect(name string) error {
	return s.mutate(func() error {
		index := s.indexOf(name)
		if index < 0 {
			return consts.ErrorsPlayerNotFound
		}
		leaving := s.players[index]
		s.players = append(s.players[:index], s.players[index+1:]...)
		s.deck.PutUnder(leaving.hand.Clear())
		s.emit(event.PlayerLeft{PlayerName: name})

		if s.phase == PhaseLobby {
			return nil
		}
		wasCurrent := index == s.cycler.Current()
		s.cycler.Remove(index)

		if s.phase == PhaseFinished {
			return nil
		}
		if len(s.players) < consts.MinPlayers {
			s.phase = PhaseFinished
			s.pendingActor = -1
			log.Infof("uno game aborted, %s left\n", name)
			s.emit(event.GameOver{Reason: ReasonInsufficientPlayers})
			return nil
		}
		if s.phase == PhaseAwaitingColor {
			if wasCurrent {
				s.phase = PhaseActive
				s.pendingActor = -1
			} else {
				s.pendingActor = s.cycler.Current()
			}
		}
		if wasCurrent {
			s.hasActed = false
			s.emit(event.TurnChanged{PlayerName: s.current().name})
		}
		return nil
	})
}

func (s *Session) advance() {
	s.cycler.Next()
	s.hasActed = false
	s.emit(event.TurnChanged{PlayerName: s.current().name})
}

// corrupt finishes the session after the deck ran dry, which only a broken
// card count can cause.
func (s *Session) corrupt(err error) error {
	log.Errorf("uno session aborted: %v\n", err)
	s.phase = PhaseFinished
	s.pendingActor = -1
	s.emit(event.GameOver{Reason: ReasonDeckCorrupted})
	return consts.ErrorsEmptyDeckCorruption
}

func (s *Session) checkActive() error {
	switch s.phase {
	case PhaseActive:
		return nil
	case PhaseAwaitingColor:
		return consts.ErrorsAwaitingColorPending
	}
	return consts.ErrorsInvalidPhase
}

func (s *Session) checkTurn(name string) error {
	if s.current().name != name {
		return consts.ErrorsNotYourTurn
	}
	return nil
}

func (s *Session) current() *Player {
	return s.players[s.cycler.Current()]
}

func (s *Session) indexOf(name string) int {
	for index, player := range s.players {
		if player.name == name {
			return index
		}
	}
	return -1
}

func (s *Session) Phase() Phase {
	s.RLock()
	defer s.RUnlock()
	return s.phase
}

func (s *Session) InProgress() bool {
	s.RLock()
	defer s.RUnlock()
	return s.phase == PhaseActive || s.phase == PhaseAwaitingColor
}

func (s *Session) AwaitingColor() bool {
	s.RLock()
	defer s.RUnlock()
	return s.phase == PhaseAwaitingColor
}

// CurrentPlayer is empty in the lobby.
func (s *Session) CurrentPlayer() (string, bool) {
	s.RLock()
	defer s.RUnlock()
	if s.phase == PhaseLobby || len(s.players) == 0 {
		return "", false
	}
	return s.current().name, true
}

func (s *Session) CurrentColor() color.Color {
	s.RLock()
	defer s.RUnlock()
	return s.currentColor
}

func (s *Session) TopDiscard() (card.Card, bool) {
	s.RLock()
	defer s.RUnlock()
	return s.deck.TopDiscard()
}

func (s *Session) Direction() Direction {
	s.RLock()
	defer s.RUnlock()
	return s.cycler.Direction()
}

func (s *Session) HasActed() bool {
	s.RLock()
	defer s.RUnlock()
	return s.hasActed
}

func (s *Session) Winner() string {
	s.RLock()
	defer s.RUnlock()
	return s.winner
}

func (s *Session) Players() []string {
	s.RLock()
	defer s.RUnlock()
	names := make([]string, 0, len(s.players))
	for _, player := range s.players {
		names = append(names, player.name)
	}
	return names
}

func (s *Session) Hand(name string) ([]card.Card, error) {
	s.RLock()
	defer s.RUnlock()
	index := s.indexOf(name)
	if index < 0 {
		return nil, consts.ErrorsPlayerNotFound
	}
	return s.players[index].Hand(), nil
}

// State returns the table as viewer sees it: every hand size, but only the
// viewer's own cards.
func (s *Session) State(viewer string) State {
	s.RLock()
	defer s.RUnlock()
	state := State{
		Phase:            s.phase,
		CurrentColor:     s.currentColor,
		Direction:        s.cycler.Direction(),
		PlayerSequence:   make([]string, 0, len(s.players)),
		PlayerHandCounts: make(map[string]int, len(s.players)),
		DrawPileSize:     s.deck.Size(),
		DiscardPileSize:  s.deck.Pile().Size(),
		Winner:           s.winner,
	}
	state.LastPlayedCard, state.HasPlayedCard = s.deck.TopDiscard()
	if s.phase != PhaseLobby && len(s.players) > 0 {
		state.CurrentPlayer = s.current().name
	}
	for _, player := range s.players {
		state.PlayerSequence = append(state.PlayerSequence, player.name)
		state.PlayerHandCounts[player.name] = player.hand.Size()
		if player.name == viewer {
			state.ViewerHand = player.hand.Cards()
			if s.phase == PhaseActive && state.CurrentPlayer == viewer {
				state.PlayableIndexes = player.hand.PlayableIndexes(s.currentColor, state.LastPlayedCard, state.HasPlayedCard)
			}
		}
	}
	return state
}
