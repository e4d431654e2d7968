package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno-server/database"
	"github.com/ratel-online/uno-server/leaderboard"
	"github.com/ratel-online/uno-server/network"
	"github.com/urfave/cli/v3"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Errorf("load .env: %v\n", err)
	}
	cmd := &cli.Command{
		Name:  "uno-server",
		Usage: "multiplayer uno over tcp and websocket",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "tcp",
				Value:   ":9999",
				Usage:   "tcp listen address",
				Sources: cli.EnvVars("UNO_TCP_ADDR"),
			},
			&cli.StringFlag{
				Name:    "ws",
				Usage:   "websocket listen address, disabled when empty",
				Sources: cli.EnvVars("UNO_WS_ADDR"),
			},
			&cli.StringFlag{
				Name:    "db",
				Value:   "uno.db",
				Usage:   "sqlite file holding the leaderboard, disabled when empty",
				Sources: cli.EnvVars("UNO_DB_PATH"),
			},
		},
		Action: serve,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String("db"); path != "" {
		db, err := leaderboard.NewDB(path)
		if err != nil {
			return err
		}
		defer db.Close()
		database.UseLeaderboard(db)
	}
	if addr := cmd.String("ws"); addr != "" {
		async.Async(func() {
			log.Error(network.NewWebsocketServer(addr).Serve())
		})
	}
	return network.NewTcpServer(cmd.String("tcp")).Serve()
}
