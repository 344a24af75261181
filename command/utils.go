package command

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-zoox/gztunnel/profile"
)

type endpoint struct {
	Scheme string
	Host   string
	Port   string
}

// parseEndpoint parses protocol://host[:port]. The port defaults to 443
// for wss and 80 for ws.
func parseEndpoint(raw string) (*endpoint, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %v", err)
	}

	switch u.Scheme {
	case "ws", "wss":
	default:
		return nil, fmt.Errorf("invalid endpoint scheme(%s), only support ws/wss", u.Scheme)
	}

	if u.Hostname() == "" {
		return nil, fmt.Errorf("invalid endpoint: host is required")
	}

	port := "443"
	if u.Scheme == "ws" {
		port = "80"
	}
	if u.Port() != "" {
		if _, err := strconv.Atoi(u.Port()); err != nil {
			return nil, fmt.Errorf("invalid endpoint port: %v", err)
		}
		port = u.Port()
	}

	return &endpoint{
		Scheme: u.Scheme,
		Host:   u.Hostname(),
		Port:   port,
	}, nil
}

type profileFlags struct {
	Host       string
	Port       string
	Protocol   string
	Payload    string
	UsePayload *bool
}

// applyProfileFlags overrides the non-empty flag values on p.
func applyProfileFlags(p *profile.Profile, flags *profileFlags) error {
	if flags.Host != "" {
		p.Host = strings.TrimSpace(flags.Host)
	}

	if flags.Port != "" {
		p.Port = strings.TrimSpace(flags.Port)
	}

	if flags.Protocol != "" {
		protocol, err := profile.ParseProtocol(flags.Protocol)
		if err != nil {
			return err
		}
		p.Protocol = protocol
	}

	if flags.Payload != "" {
		p.Payload = flags.Payload
	}

	if flags.UsePayload != nil {
		p.UsePayload = *flags.UsePayload
	}

	return p.Validate()
}
