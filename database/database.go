package database

import (
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/leaderboard"
)

var roomIds int64 = 0
var players = hashmap.New()
var rooms = hashmap.New()
var roomPlayers = hashmap.New()
var board *leaderboard.DB

func init() {
	async.Async(func() {
		for {
			time.Sleep(consts.RoomSweepEvery)
			rooms.Foreach(func(e *hashmap.Entry) {
				room := e.Value().(*Room)
				room.Lock()
				room.Cancel()
				room.Unlock()
			})
		}
	})
}

// UseLeaderboard makes every room created afterwards count wins in db.
func UseLeaderboard(db *leaderboard.DB) {
	board = db
}

func Leaderboard() *leaderboard.DB {
	return board
}

func Connected(conn *network.Conn, info *model.AuthInfo) *Player {
	player := &Player{
		ID:    info.ID,
		Name:  strings.TrimSpace(info.Name),
		Score: info.Score,
	}
	player.Conn(conn)
	player.State(consts.StateWelcome)
	players.Set(info.ID, player)
	return player
}

func CreateRoom(creator int64) (*Room, error) {
	room := newRoom(atomic.AddInt64(&roomIds, 1), creator)
	rooms.Set(room.ID, room)
	roomPlayers.Set(room.ID, map[int64]bool{})
	if err := JoinRoom(room.ID, creator); err != nil {
		room.Lock()
		room.delete()
		room.Unlock()
		return nil, err
	}
	return room, nil
}

func GetRooms() []*Room {
	list := make([]*Room, 0)
	rooms.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Room))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

func GetRoom(roomId int64) *Room {
	return getRoom(roomId)
}

func getRoom(roomId int64) *Room {
	if v, ok := rooms.Get(roomId); ok {
		return v.(*Room)
	}
	return nil
}

func GetPlayer(playerId int64) *Player {
	return getPlayer(playerId)
}

func getPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

func getRoomPlayers(roomId int64) map[int64]bool {
	if v, ok := roomPlayers.Get(roomId); ok {
		return v.(map[int64]bool)
	}
	return nil
}

// RoomPlayers returns a copy of the ids seated in the room.
func RoomPlayers(roomId int64) []int64 {
	room := getRoom(roomId)
	if room == nil {
		return nil
	}
	room.Lock()
	defer room.Unlock()
	ids := make([]int64, 0)
	for id := range getRoomPlayers(roomId) {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// JoinRoom seats the player at the table. Only rooms still in the lobby accept
// new players.
func JoinRoom(roomId, playerId int64) error {
	player := getPlayer(playerId)
	if player == nil {
		return consts.ErrorsExist
	}
	room := getRoom(roomId)
	if room == nil {
		return consts.ErrorsRoomInvalid
	}
	room.Lock()
	defer room.Unlock()
	if room.State() != consts.RoomStateWaiting {
		return consts.ErrorsJoinFailForRoomRunning
	}
	if room.Players >= consts.MaxPlayers {
		return consts.ErrorsRoomPlayersIsFull
	}
	playerIds := getRoomPlayers(roomId)
	if playerIds == nil {
		return consts.ErrorsRoomInvalid
	}
	if err := room.Session.RegisterPlayer(player.Name); err != nil {
		return err
	}
	room.Session.Subscribe(player)
	playerIds[playerId] = true
	room.Players++
	room.ActiveTime = time.Now()
	player.RoomID = roomId
	return nil
}

func LeaveRoom(roomId, playerId int64) bool {
	room := getRoom(roomId)
	if room != nil {
		room.Lock()
		defer room.Unlock()
		return room.removePlayer(getPlayer(playerId))
	}
	return false
}

func Broadcast(roomId int64, msg string, exclude ...int64) {
	room := getRoom(roomId)
	if room == nil {
		return
	}
	room.Lock()
	defer room.Unlock()
	room.broadcast(msg, exclude...)
}
