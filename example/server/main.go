package main

import (
	"github.com/go-zoox/gztunnel/core"
	"github.com/go-zoox/logger"
)

func main() {
	s := core.NewEchoServer(&core.EchoServerConfig{
		Port: 8080,
		Path: "/",
	})

	if err := s.Run(); err != nil {
		logger.Fatal("failed to start echo server: %s", err)
		return
	}
}
