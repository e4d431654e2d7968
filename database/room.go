package database

import (
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/leaderboard"
	"github.com/ratel-online/uno-server/model"
	"github.com/ratel-online/uno-server/uno/game"
)

// Room hosts one uno session. Membership changes happen under the room lock;
// the session serializes game commands on its own.
type Room struct {
	sync.Mutex

	ID         int64         `json:"id"`
	Session    *game.Session `json:"-"`
	Players    int           `json:"players"`
	Creator    int64         `json:"creator"`
	ActiveTime time.Time     `json:"activeTime"`

	recorder *leaderboard.Recorder
}

func newRoom(id, creator int64) *Room {
	room := &Room{
		ID:         id,
		Creator:    creator,
		ActiveTime: time.Now(),
	}
	if board != nil {
		room.recorder = leaderboard.NewRecorder(board)
	}
	room.Session = room.newSession()
	return room
}

func (room *Room) newSession() *game.Session {
	session := game.NewSession()
	if room.recorder != nil {
		session.Subscribe(room.recorder)
	}
	return session
}

func (room *Room) State() int {
	switch room.Session.Phase() {
	case game.PhaseLobby:
		return consts.RoomStateWaiting
	case game.PhaseFinished:
		return consts.RoomStateFinished
	}
	return consts.RoomStateRunning
}

func (room *Room) Model() model.Room {
	state := room.State()
	return model.Room{
		ID:        room.ID,
		Players:   room.Players,
		State:     state,
		StateDesc: consts.RoomStates[state],
		Creator:   room.Creator,
	}
}

// Reopen swaps a finished session for a fresh lobby holding the same
// players, so the table can take newcomers again.
func (room *Room) Reopen() error {
	if room.State() != consts.RoomStateFinished {
		return consts.ErrorsInvalidPhase
	}
	old := room.Session
	session := room.newSession()
	for id := range getRoomPlayers(room.ID) {
		player := getPlayer(id)
		if player == nil {
			continue
		}
		old.Unsubscribe(player)
		if err := session.RegisterPlayer(player.Name); err != nil {
			log.Errorf("room %d reopen, register %s: %v\n", room.ID, player.Name, err)
			continue
		}
		session.Subscribe(player)
	}
	room.Session = session
	room.ActiveTime = time.Now()
	old.Close()
	return nil
}

func (room *Room) removePlayer(player *Player) bool {
	if room == nil || player == nil {
		return false
	}
	room.ActiveTime = time.Now()
	playerIds := getRoomPlayers(room.ID)
	_, ok := playerIds[player.ID]
	if ok {
		if err := room.Session.Disconnect(player.Name); err != nil {
			log.Errorf("room %d disconnect %s: %v\n", room.ID, player.Name, err)
		}
		room.Session.Unsubscribe(player)
		room.Players--
		player.RoomID = 0
		delete(playerIds, player.ID)
		if len(playerIds) > 0 && room.Creator == player.ID {
			for k := range playerIds {
				room.Creator = k
				break
			}
		}
	}
	if len(playerIds) == 0 {
		room.delete()
	}
	return ok
}

// Cancel drops rooms idle for too long or without anyone online.
func (room *Room) Cancel() {
	if room.ActiveTime.Add(consts.RoomIdleExpiry).Before(time.Now()) {
		log.Infof("room %d is timeout 24 hours, removed.\n", room.ID)
		room.delete()
		return
	}
	living := false
	for id := range getRoomPlayers(room.ID) {
		if player := getPlayer(id); player != nil && player.online {
			living = true
			break
		}
	}
	if !living {
		log.Infof("room %d is not living, removed.\n", room.ID)
		room.delete()
	}
}

func (room *Room) broadcast(msg string, exclude ...int64) {
	room.ActiveTime = time.Now()
	excludeSet := map[int64]bool{}
	for _, exc := range exclude {
		excludeSet[exc] = true
	}
	for playerId := range getRoomPlayers(room.ID) {
		if player := getPlayer(playerId); player != nil && !excludeSet[playerId] {
			_ = player.WriteString(">> " + msg)
		}
	}
}

func (room *Room) delete() {
	if room != nil {
		rooms.Del(room.ID)
		roomPlayers.Del(room.ID)
		room.Session.Close()
	}
}
