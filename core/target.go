package core

import (
	"fmt"
	"net"
	"strings"

	"github.com/go-zoox/gztunnel/profile"
)

// ResolveTarget picks the websocket url a profile is dialed at. WebSocket
// profiles and echo hosts are dialed directly; simulated protocols go to the
// fallback echo url.
func ResolveTarget(scheme, fallbackURL string, p *profile.Profile) string {
	if strings.Contains(p.Host, "echo") || p.Protocol == profile.ProtocolWebSocket {
		return fmt.Sprintf("%s://%s/", scheme, net.JoinHostPort(p.Host, p.Port))
	}

	return fallbackURL
}
