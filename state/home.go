package state

import (
	"bytes"
	"fmt"

	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/database"
)

type home struct{}

func (*home) Next(player *database.Player) (consts.StateID, error) {
	err := player.WriteString("ls | new | join <id> | top | query <code> | exit\n")
	if err != nil {
		return 0, player.WriteError(err)
	}
	line, err := player.AskForString()
	if err != nil {
		return 0, player.WriteError(err)
	}
	cmd := parseCommand(line)
	switch cmd.name {
	case "ls":
		return 0, player.WriteString(roomTable())
	case "new":
		room, err := database.CreateRoom(player.ID)
		if err != nil {
			return 0, player.WriteError(err)
		}
		_ = player.WriteString(fmt.Sprintf("Room %d created, type start when everyone is in.\n", room.ID))
		return consts.StateRoom, nil
	case "join":
		roomId, ok := cmd.int64Arg()
		if !ok {
			return 0, player.WriteError(consts.ErrorsRoomInvalid)
		}
		if err := database.JoinRoom(roomId, player.ID); err != nil {
			return 0, player.WriteError(err)
		}
		database.Broadcast(roomId, fmt.Sprintf("%s joined room! room current has %d players\n", player.Name, len(database.RoomPlayers(roomId))))
		return consts.StateRoom, nil
	case "top":
		return 0, player.WriteString(topTable())
	case "query":
		if err := query(player, cmd); err != nil {
			return 0, player.WriteError(err)
		}
		return 0, nil
	case "exit":
		return 0, consts.ErrorsExist
	case "":
		return 0, nil
	}
	return 0, player.WriteError(consts.ErrorsInputInvalid)
}

func (*home) Exit(player *database.Player) consts.StateID {
	_ = player.WriteString("Bye!\n")
	return 0
}

func roomTable() string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-10s%-10s%-10s\n", "ID", "Players", "State"))
	for _, room := range database.GetRooms() {
		room.Lock()
		m := room.Model()
		room.Unlock()
		buf.WriteString(fmt.Sprintf("%-10d%-10d%-10s\n", m.ID, m.Players, m.StateDesc))
	}
	return buf.String()
}

func topTable() string {
	board := database.Leaderboard()
	if board == nil {
		return consts.ErrorsLeaderboardUnavailable.Error() + "\n"
	}
	entries, err := board.Top(consts.LeaderboardSize)
	if err != nil {
		return consts.ErrorsLeaderboardUnavailable.Error() + "\n"
	}
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-5s%-20s%-10s\n", "#", "Name", "Wins"))
	for i, entry := range entries {
		buf.WriteString(fmt.Sprintf("%-5d%-20s%-10d\n", i+1, entry.Name, entry.Wins))
	}
	return buf.String()
}
