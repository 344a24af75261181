package main

import (
	"github.com/go-zoox/cli"
	"github.com/go-zoox/gztunnel/command"
)

func main() {
	app := cli.NewMultipleProgram(&cli.MultipleProgramConfig{
		Name:    "gztunnel",
		Usage:   "gztunnel is a demo tunnel client with a payload generator.",
		Version: Version,
	})

	command.RegisterClient(app)
	command.RegisterServer(app)
	command.RegisterExpand(app)

	app.Run()
}
