package state

import (
	"bytes"
	"fmt"

	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/database"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/game"
	"github.com/ratel-online/uno-server/uno/msg"
)

type room struct{}

func (s *room) Next(player *database.Player) (consts.StateID, error) {
	player.StartTransaction()
	defer player.StopTransaction()
	for {
		current := database.GetRoom(player.RoomID)
		if current == nil {
			_ = player.WriteError(consts.ErrorsRoomInvalid)
			return consts.StateHome, nil
		}
		line, err := player.AskForStringWithoutTransaction()
		if err != nil {
			return 0, player.WriteError(err)
		}
		cmd := parseCommand(line)
		if cmd.name == "exit" {
			return s.Exit(player), nil
		}
		if err := handle(player, current, cmd, line); err != nil {
			_ = player.WriteError(err)
		}
	}
}

func (*room) Exit(player *database.Player) consts.StateID {
	current := database.GetRoom(player.RoomID)
	if current != nil {
		database.LeaveRoom(current.ID, player.ID)
		database.Broadcast(current.ID, fmt.Sprintf("%s exited room! room current has %d players\n", player.Name, len(database.RoomPlayers(current.ID))))
	}
	return consts.StateHome
}

func handle(player *database.Player, current *database.Room, cmd command, line string) error {
	session := sessionOf(current)
	switch cmd.name {
	case "":
		return nil
	case "ls":
		return player.WriteString(roomPlayers(current, session))
	case "query":
		return query(player, cmd)
	case "hand":
		return player.WriteString(session.State(player.Name).String() + "\n")
	case "start":
		current.Lock()
		owner := current.Creator == player.ID
		current.Unlock()
		if !owner {
			return consts.ErrorsNotRoomOwner
		}
		return session.Start()
	case "play":
		index, ok := cmd.intArg()
		if !ok {
			return consts.ErrorsInvalidCardIndex
		}
		_, err := session.PlayCard(player.Name, index)
		return err
	case "draw":
		drawn, err := session.DrawCard(player.Name)
		if err != nil {
			return err
		}
		return player.WriteString(msg.Message.HumanPlayerDrewCard(drawn))
	case "pass":
		return session.PassTurn(player.Name)
	case "color":
		chosen, err := color.ByName(cmd.arg)
		if err != nil {
			return consts.ErrorsInvalidColorChoice
		}
		return session.ChooseColor(player.Name, chosen)
	case "restart":
		err := session.Restart()
		if err != consts.ErrorsInsufficientPlayers {
			return err
		}
		current.Lock()
		defer current.Unlock()
		return current.Reopen()
	}
	database.Broadcast(current.ID, fmt.Sprintf("%s say: %s\n", player.Name, line), player.ID)
	return nil
}

func sessionOf(current *database.Room) *game.Session {
	current.Lock()
	defer current.Unlock()
	return current.Session
}

func roomPlayers(current *database.Room, session *game.Session) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Room ID: %d\n", current.ID))
	buf.WriteString(fmt.Sprintf("%-20s%-10s%-10s%-10s\n", "Name", "Score", "Cards", "Title"))
	for _, playerId := range database.RoomPlayers(current.ID) {
		player := database.GetPlayer(playerId)
		if player == nil {
			continue
		}
		m := player.Model()
		title := "player"
		if m.Owner {
			title = "owner"
		}
		buf.WriteString(fmt.Sprintf("%-20s%-10d%-10d%-10s\n", m.Name, m.Score, m.Cards, title))
	}
	buf.WriteString(fmt.Sprintf("\nPhase: %s\n", session.Phase()))
	return buf.String()
}
