// Package profile holds the connection profiles a tunnel session is started
// from.
package profile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-zoox/gztunnel/payload"
)

const (
	DefaultID      = "default"
	DefaultName    = "Echo Test Server"
	DefaultHost    = "echo.websocket.org"
	DefaultPort    = "443"
	DefaultPayload = "GET / HTTP/1.1[crlf]Host: [host][crlf]Upgrade: websocket[crlf]Connection: Upgrade[crlf][crlf]"
)

type Profile struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Host       string   `json:"host"`
	Port       string   `json:"port"`
	Username   string   `json:"username,omitempty"`
	Password   string   `json:"password,omitempty"`
	Payload    string   `json:"payload"`
	Protocol   Protocol `json:"protocol"`
	UsePayload bool     `json:"usePayload"`
}

// Default returns the built-in echo server profile.
func Default() *Profile {
	return &Profile{
		ID:         DefaultID,
		Name:       DefaultName,
		Host:       DefaultHost,
		Port:       DefaultPort,
		Protocol:   ProtocolWebSocket,
		Payload:    DefaultPayload,
		UsePayload: true,
	}
}

func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Host) == "" {
		return fmt.Errorf("profile(%s): host is required", p.Name)
	}

	port, err := strconv.Atoi(p.Port)
	if err != nil {
		return fmt.Errorf("profile(%s): invalid port %q: %v", p.Name, p.Port, err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("profile(%s): port %d out of range", p.Name, port)
	}

	if _, err := ParseProtocol(string(p.Protocol)); err != nil {
		return fmt.Errorf("profile(%s): %w", p.Name, err)
	}

	return nil
}

// Frames expands the profile payload against its own host and port.
func (p *Profile) Frames() []string {
	return payload.Expand(p.Payload, p.Host, p.Port)
}

// Address is host:port as shown in the console.
func (p *Profile) Address() string {
	return fmt.Sprintf("%s:%s", p.Host, p.Port)
}

func (p *Profile) Clone() *Profile {
	np := *p
	return &np
}
