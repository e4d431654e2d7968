package state

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/database"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateHome, &home{})
	register(consts.StateRoom, &room{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

type State interface {
	Next(player *database.Player) (consts.StateID, error)
	Exit(player *database.Player) consts.StateID
}

// Run drives a connected player through the screens until they quit or the
// connection drops.
func Run(player *database.Player) {
	defer func() {
		if err := recover(); err != nil {
			async.PrintStackTrace(err)
		}
		log.Infof("player %s state machine stopped\n", player)
	}()
	for {
		state := states[player.GetState()]
		stateId, err := state.Next(player)
		if err != nil {
			if err == consts.ErrorsChanClosed {
				return
			}
			e, ok := err.(consts.Error)
			if ok && !e.Exit {
				continue
			}
			if !ok {
				log.Error(err)
			}
			stateId = state.Exit(player)
			if stateId == 0 {
				player.Disconnect()
				return
			}
		}
		if stateId > 0 {
			player.State(stateId)
		}
	}
}
