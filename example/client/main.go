package main

import (
	"context"
	"time"

	"github.com/go-zoox/gztunnel/core"
	"github.com/go-zoox/gztunnel/profile"
	"github.com/go-zoox/logger"
)

func main() {
	p := profile.Default()
	p.Host = "127.0.0.1"
	p.Port = "8080"
	p.Payload = "GET / HTTP/1.1[crlf]Host: [host]:[port][crlf][crlf][split]hello[lf]"

	session := core.NewSession(&core.SessionConfig{
		Scheme: "ws",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := session.Connect(ctx, p); err != nil && err != context.DeadlineExceeded {
		logger.Fatal("failed to connect: %s", err)
		return
	}

	for _, entry := range session.Console().Entries() {
		logger.Info("[%s] %s", entry.Type, entry.Message)
	}
}
