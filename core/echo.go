package core

import (
	"fmt"

	"github.com/go-zoox/zoox"
	zws "github.com/go-zoox/zoox/components/application/websocket"
	zd "github.com/go-zoox/zoox/defaults"
)

// EchoServer is a local websocket peer for the demo tunnel: every message is
// written back to its sender.
type EchoServer interface {
	Run() error
}

type EchoServerConfig struct {
	Port int64  `config:"port"`
	Path string `config:"path"`
}

type echoServer struct {
	Port int64
	Path string
}

func NewEchoServer(cfg *EchoServerConfig) EchoServer {
	var Port int64 = 8080
	Path := "/"

	if cfg != nil {
		if cfg.Port != 0 {
			Port = cfg.Port
		}
		if cfg.Path != "" {
			Path = cfg.Path
		}
	}

	return &echoServer{
		Port: Port,
		Path: Path,
	}
}

func (s *echoServer) Run() error {
	return s.application().Run(fmt.Sprintf(":%d", s.Port))
}

func (s *echoServer) application() *zoox.Application {
	app := zd.Default()

	app.WebSocket(s.Path, func(ctx *zoox.Context, client *zws.Client) {
		client.OnError = func(err error) {
			if e, ok := err.(*zws.CloseError); ok {
				ctx.Logger.Error("[echo][error][client: %s][code: %d] %v", client.ID, e.Code, e)
			} else {
				ctx.Logger.Error("[echo][error][client: %s][code: nocode] %v", client.ID, err)
			}
		}

		client.OnConnect = func() {
			ctx.Logger.Info("[echo][connect] client: %s", client.ID)
		}

		client.OnDisconnect = func() {
			ctx.Logger.Info("[echo][disconnect] client: %s", client.ID)
		}

		client.OnTextMessage = func(msg []byte) {
			ctx.Logger.Info("[echo][client: %s] %s", client.ID, msg)
			if err := client.WriteText(msg); err != nil {
				ctx.Logger.Error("[echo][client: %s] failed to write text: %v", client.ID, err)
			}
		}

		client.OnBinaryMessage = func(msg []byte) {
			ctx.Logger.Info("[echo][client: %s] binary(%d)", client.ID, len(msg))
			if err := client.WriteBinary(msg); err != nil {
				ctx.Logger.Error("[echo][client: %s] failed to write binary: %v", client.ID, err)
			}
		}
	})

	return app
}
