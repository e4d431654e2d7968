package service

import (
	"sort"

	"github.com/ratel-online/core/consts"
	"github.com/ratel-online/core/errors"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/uno-server/database"
	uno "github.com/ratel-online/uno-server/model"
)

type servlet func(player *database.Player) model.Resp

var servlets = map[int]servlet{
	consts.ServiceGetRoom:        getRoom,
	consts.ServiceGetRooms:       getRooms,
	consts.ServiceGetRoomPlayers: getRoomPlayers,
	consts.ServiceGetGame:        getGame,
}

// Codes lists the queries Handle answers, in ascending order.
func Codes() []int {
	codes := make([]int, 0, len(servlets))
	for code := range servlets {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

// Handle answers a JSON query about the player's surroundings.
func Handle(player *database.Player, code int) (model.Resp, bool) {
	var resp model.Resp
	fn, ok := servlets[code]
	if !ok {
		return resp, false
	}
	return fn(player), true
}

func getRooms(player *database.Player) model.Resp {
	modelRooms := make([]uno.Room, 0)
	for _, room := range database.GetRooms() {
		room.Lock()
		modelRooms = append(modelRooms, room.Model())
		room.Unlock()
	}
	return model.SucResp(consts.Service, modelRooms)
}

func getRoom(player *database.Player) model.Resp {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return model.ErrResp(consts.Service, errors.RoomInvalid)
	}
	room.Lock()
	defer room.Unlock()
	return model.SucResp(consts.Service, room.Model())
}

func getRoomPlayers(player *database.Player) model.Resp {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return model.ErrResp(consts.Service, errors.RoomInvalid)
	}
	modelPlayers := make([]uno.Player, 0)
	for _, playerId := range database.RoomPlayers(room.ID) {
		if roomPlayer := database.GetPlayer(playerId); roomPlayer != nil {
			modelPlayers = append(modelPlayers, roomPlayer.Model())
		}
	}
	return model.SucResp(consts.Service, modelPlayers)
}

// getGame shows the table from the asking player's seat.
func getGame(player *database.Player) model.Resp {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return model.ErrResp(consts.Service, errors.RoomInvalid)
	}
	room.Lock()
	session := room.Session
	room.Unlock()
	if !session.InProgress() {
		return model.ErrResp(consts.Service, errors.RoomNotInPlay)
	}
	return model.SucResp(consts.Service, session.State(player.Name))
}
