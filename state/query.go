package state

import (
	"fmt"

	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/database"
	"github.com/ratel-online/uno-server/service"
)

// query answers "query <code>" with a JSON view, and lists the codes when
// none is given.
func query(player *database.Player, cmd command) error {
	code, ok := cmd.intArg()
	if !ok {
		return player.WriteString(fmt.Sprintf("query codes: %v\n", service.Codes()))
	}
	resp, ok := service.Handle(player, code)
	if !ok {
		return consts.ErrorsInputInvalid
	}
	return player.WriteObject(resp)
}
