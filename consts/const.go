package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateRoom
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	MinPlayers = 2
	MaxPlayers = 10
	HandSize   = 7
	DeckSize   = 108

	RoomStateWaiting  = 1
	RoomStateRunning  = 2
	RoomStateFinished = 3

	AuthTimeout    = 3 * time.Second
	RoomIdleExpiry = 24 * time.Hour
	RoomSweepEvery = time.Minute

	LeaderboardSize = 5
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

// Game errors leave the session untouched, except ErrorsEmptyDeckCorruption
// which finishes it.
var (
	ErrorsInvalidPhase         = NewErr(100, false, "Operation not allowed right now. ")
	ErrorsNotYourTurn          = NewErr(101, false, "It's not your turn. ")
	ErrorsInvalidCardIndex     = NewErr(102, false, "Card index out of range. ")
	ErrorsIllegalPlay          = NewErr(103, false, "That card can't be played. ")
	ErrorsMustActFirst         = NewErr(104, false, "You must draw or play before passing. ")
	ErrorsAlreadyActed         = NewErr(105, false, "You already drew this turn, play or pass. ")
	ErrorsAwaitingColorPending = NewErr(106, false, "Waiting for a color to be chosen. ")
	ErrorsInvalidColorChoice   = NewErr(107, false, "Invalid color choice. ")
	ErrorsInsufficientPlayers  = NewErr(108, false, "Not enough players. ")
	ErrorsPlayerNameTaken      = NewErr(109, false, "Player name already taken. ")
	ErrorsEmptyDeckCorruption  = NewErr(110, true, "Deck corrupted, no cards left to draw. ")
	ErrorsPlayerNotFound       = NewErr(111, false, "Player not found. ")
	ErrorsInvalidPlayerName    = NewErr(112, false, "Invalid player name. ")
	ErrorsRoomPlayersIsFull    = NewErr(113, false, "Room players is full. ")
)

var (
	ErrorsExist                  = NewErr(1, true, "Exist. ")
	ErrorsChanClosed             = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout                = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid           = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail               = NewErr(1, true, "Auth fail. ")
	ErrorsRoomInvalid            = NewErr(1, false, "Room invalid. ")
	ErrorsJoinFailForRoomRunning = NewErr(1, false, "Join fail, room is running. ")
	ErrorsNotRoomOwner           = NewErr(1, false, "Only the room owner can do that. ")
	ErrorsLeaderboardUnavailable = NewErr(1, false, "Leaderboard unavailable. ")

	RoomStates = map[int]string{
		RoomStateWaiting:  "Waiting",
		RoomStateRunning:  "Running",
		RoomStateFinished: "Finished",
	}
)
