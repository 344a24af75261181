package command

import (
	"fmt"

	"github.com/go-zoox/cli"
	"github.com/go-zoox/gztunnel/console"
	"github.com/go-zoox/gztunnel/payload"
	"github.com/go-zoox/gztunnel/profile"
)

func RegisterExpand(app *cli.MultipleProgram) {
	app.Register("expand", &cli.Command{
		Name:  "expand",
		Usage: "print the frames a payload template expands to",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "payload",
				Usage: "payload template",
				Value: profile.DefaultPayload,
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "value of [host]",
				Value: profile.DefaultHost,
			},
			&cli.StringFlag{
				Name:  "port",
				Usage: "value of [port]",
				Value: profile.DefaultPort,
			},
			&cli.BoolFlag{
				Name:  "tokens",
				Usage: "list the template tokens and exit",
			},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.Bool("tokens") {
				for _, token := range payload.Tokens() {
					fmt.Printf("%-8s %s\n", token.Tag(), token.Usage)
				}
				return nil
			}

			frames := payload.Expand(ctx.String("payload"), ctx.String("host"), ctx.String("port"))
			for _, line := range formatFrames(frames) {
				fmt.Println(line)
			}

			return nil
		},
	})
}

func formatFrames(frames []string) []string {
	lines := make([]string, 0, len(frames))
	for index, frame := range frames {
		lines = append(lines, fmt.Sprintf("[%d] %s", index, console.EscapeFrame(frame)))
	}
	return lines
}
