package command

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-zoox/cli"
	"github.com/go-zoox/gztunnel/console"
	"github.com/go-zoox/gztunnel/core"
	"github.com/go-zoox/gztunnel/profile"
	"github.com/go-zoox/logger"
)

func RegisterClient(app *cli.MultipleProgram) {
	app.Register("client", &cli.Command{
		Name:  "client",
		Usage: "open a demo tunnel and inject the profile payload",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "the filepath for profiles configuration",
				Aliases: []string{"c"},
			},
			&cli.StringFlag{
				Name:  "profile",
				Usage: "profile id or name in the config file",
				Value: profile.DefaultID,
			},
			&cli.StringFlag{
				Name:  "target",
				Usage: "target endpoint, format: ws(s)://host:port, overrides host/port/scheme",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "target host",
			},
			&cli.StringFlag{
				Name:  "port",
				Usage: "target port",
			},
			&cli.StringFlag{
				Name:  "protocol",
				Usage: "tunnel protocol, one of ws/ssh/tls/tcp (non ws protocols are simulated)",
			},
			&cli.StringFlag{
				Name:  "payload",
				Usage: "payload template, tokens: [host] [port] [crlf] [lf] [split]",
			},
			&cli.BoolFlag{
				Name:  "use-payload",
				Usage: "inject the payload on connect, otherwise send PING",
			},
			&cli.StringFlag{
				Name:  "scheme",
				Usage: "websocket scheme for direct targets, ws or wss",
				Value: core.DefaultScheme,
			},
			&cli.StringFlag{
				Name:  "fallback",
				Usage: "echo endpoint used for simulated protocols",
				Value: core.DefaultFallbackURL,
			},
			&cli.IntFlag{
				Name:  "interval",
				Usage: "delay between payload frames in milliseconds",
				Value: int(core.DefaultFrameInterval / time.Millisecond),
			},
		},
		Action: func(ctx *cli.Context) error {
			p, err := loadProfile(ctx.String("config"), ctx.String("profile"))
			if err != nil {
				return err
			}

			scheme := ctx.String("scheme")
			flags := &profileFlags{
				Host:     ctx.String("host"),
				Port:     ctx.String("port"),
				Protocol: ctx.String("protocol"),
				Payload:  ctx.String("payload"),
			}
			if ctx.IsSet("use-payload") {
				usePayload := ctx.Bool("use-payload")
				flags.UsePayload = &usePayload
			}
			if ctx.String("target") != "" {
				target, err := parseEndpoint(ctx.String("target"))
				if err != nil {
					return err
				}
				scheme, flags.Host, flags.Port = target.Scheme, target.Host, target.Port
			}
			if scheme != "ws" && scheme != "wss" {
				return fmt.Errorf("invalid scheme(%s), only support ws/wss", scheme)
			}
			if err := applyProfileFlags(p, flags); err != nil {
				return err
			}

			if _, err := parseEndpoint(ctx.String("fallback")); err != nil {
				return fmt.Errorf("invalid fallback: %v", err)
			}

			logger.Info("profile: %s (%s)", p.Name, p.Address())

			session := core.NewSession(&core.SessionConfig{
				Scheme:        scheme,
				FallbackURL:   ctx.String("fallback"),
				FrameInterval: time.Duration(ctx.Int("interval")) * time.Millisecond,
				Console:       console.New(),
			})

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sig
				session.Disconnect()
			}()

			return session.Connect(context.Background(), p)
		},
	})
}

func loadProfile(filepath, key string) (*profile.Profile, error) {
	if filepath == "" {
		return profile.Default(), nil
	}

	store, err := profile.Load(filepath)
	if err != nil {
		return nil, err
	}

	p, err := store.Find(key)
	if err != nil {
		return nil, fmt.Errorf("failed to find profile %s in %s: %w", key, filepath, err)
	}

	return p, nil
}
