package command

import (
	"fmt"

	"github.com/go-zoox/cli"
	"github.com/go-zoox/config"
	"github.com/go-zoox/fs"
	"github.com/go-zoox/gztunnel/core"
)

func RegisterServer(app *cli.MultipleProgram) {
	app.Register("server", &cli.Command{
		Name:  "server",
		Usage: "local websocket echo server for the demo tunnel",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "the filepath for server configuration",
				Aliases: []string{"c"},
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "listen port",
				Value: 8080,
			},
			&cli.StringFlag{
				Name:  "path",
				Usage: "websocket path",
				Value: "/",
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg := core.EchoServerConfig{
				Port: int64(ctx.Int("port")),
				Path: ctx.String("path"),
			}

			if filepath := ctx.String("config"); filepath != "" {
				if !fs.IsExist(filepath) {
					return fmt.Errorf("config file not found at %s", filepath)
				}

				if err := config.Load(&cfg, &config.LoadOptions{
					FilePath: filepath,
				}); err != nil {
					return fmt.Errorf("failed to load config file at %s: %v", filepath, err)
				}
			}

			return core.NewEchoServer(&cfg).Run()
		},
	})
}
