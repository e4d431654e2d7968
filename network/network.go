package network

import (
	"strings"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/database"
	"github.com/ratel-online/uno-server/state"
)

// Network is implemented by every transport the server listens on.
type Network interface {
	Serve() error
}

func handle(rwc protocol.ReadWriteCloser) error {
	c := network.Wrapper(rwc)
	defer func() {
		if err := c.Close(); err != nil {
			log.Error(err)
		}
	}()
	authInfo, err := loginAuth(c)
	if err != nil || authInfo.ID == 0 || strings.TrimSpace(authInfo.Name) == "" {
		if err == nil {
			err = consts.ErrorsAuthFail
		}
		_ = c.Write(protocol.ErrorPacket(err))
		return err
	}
	if database.GetPlayer(authInfo.ID) != nil {
		_ = c.Write(protocol.ErrorPacket(consts.ErrorsAuthFail))
		return consts.ErrorsAuthFail
	}
	player := database.Connected(c, authInfo)
	log.Infof("player %s connected\n", player)
	go state.Run(player)
	defer player.Offline()
	return player.Listening()
}

// loginAuth waits for the client's first packet, which must carry its
// identity.
func loginAuth(c *network.Conn) (*model.AuthInfo, error) {
	authChan := make(chan *model.AuthInfo, 1)
	async.Async(func() {
		packet, err := c.Read()
		if err != nil {
			log.Error(err)
			return
		}
		authInfo := &model.AuthInfo{}
		if err := packet.Unmarshal(authInfo); err != nil {
			log.Error(err)
			return
		}
		authChan <- authInfo
	})
	select {
	case authInfo := <-authChan:
		return authInfo, nil
	case <-time.After(consts.AuthTimeout):
		return nil, consts.ErrorsAuthFail
	}
}
