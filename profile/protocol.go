package profile

import (
	"errors"
	"fmt"
	"strings"
)

type Protocol string

const (
	ProtocolWebSocket Protocol = "WebSocket (WS)"
	ProtocolSSH       Protocol = "SSH (Simulated)"
	ProtocolTLS       Protocol = "TLS/SSL (Simulated)"
	ProtocolTCP       Protocol = "Direct TCP (Simulated)"
)

var ErrInvalidProtocol = errors.New("invalid protocol")

var protocols = map[string]Protocol{
	"ws":        ProtocolWebSocket,
	"websocket": ProtocolWebSocket,
	"ssh":       ProtocolSSH,
	"tls":       ProtocolTLS,
	"ssl":       ProtocolTLS,
	"tcp":       ProtocolTCP,
}

// ParseProtocol accepts a short name (ws, ssh, tls, tcp) or a display name,
// case-insensitive.
func ParseProtocol(s string) (Protocol, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if p, ok := protocols[name]; ok {
		return p, nil
	}

	for _, p := range []Protocol{ProtocolWebSocket, ProtocolSSH, ProtocolTLS, ProtocolTCP} {
		if strings.ToLower(string(p)) == name {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %s, only support ws/ssh/tls/tcp", ErrInvalidProtocol, s)
}

// Simulated reports whether the protocol is only emulated over a websocket.
func (p Protocol) Simulated() bool {
	return p != ProtocolWebSocket
}
