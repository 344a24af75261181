package core

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	MessageTypeText  = websocket.TextMessage
	MessageTypeClose = websocket.CloseMessage
)

const (
	DefaultScheme           = "wss"
	DefaultFallbackURL      = "wss://echo.websocket.org"
	DefaultFrameInterval    = 200 * time.Millisecond
	DefaultHandshakeTimeout = 10 * time.Second
	// KeepAliveMessage is sent on open when the payload is disabled.
	KeepAliveMessage = "PING"
)

type Status string

const (
	StatusDisconnected Status = "Disconnected"
	StatusConnecting   Status = "Connecting..."
	StatusConnected    Status = "Connected"
	StatusError        Status = "Error"
)
