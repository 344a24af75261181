package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-zoox/gztunnel/console"
	"github.com/go-zoox/gztunnel/profile"
	"github.com/go-zoox/logger"
	"github.com/gorilla/websocket"
)

var ErrSessionActive = errors.New("session is already connecting or connected")

const connectionErrorMessage = "Connection Error. Ensure host supports WSS or allow mixed content."

// Session is a demo tunnel: it dials the profile target over a websocket,
// injects the expanded payload frames and logs the traffic to its console.
type Session interface {
	// Connect blocks until the connection is closed by the peer, by
	// Disconnect, or by ctx.
	Connect(ctx context.Context, p *profile.Profile) error
	Disconnect() error
	//
	Status() Status
	Console() *console.Console
}

type SessionConfig struct {
	// Scheme used for direct targets, ws or wss.
	Scheme string
	// FallbackURL is dialed for simulated protocols.
	FallbackURL      string
	FrameInterval    time.Duration
	HandshakeTimeout time.Duration
	//
	Console *console.Console
}

type session struct {
	sync.RWMutex
	// writes on a gorilla conn must not run concurrently
	writeMu sync.Mutex

	conn   *websocket.Conn
	status Status
	// attempt identifies the current Connect; Disconnect bumps it
	attempt    uint64
	cancelDial context.CancelFunc

	scheme           string
	fallbackURL      string
	frameInterval    time.Duration
	handshakeTimeout time.Duration

	console *console.Console
}

func NewSession(cfg *SessionConfig) Session {
	s := &session{
		status:           StatusDisconnected,
		scheme:           DefaultScheme,
		fallbackURL:      DefaultFallbackURL,
		frameInterval:    DefaultFrameInterval,
		handshakeTimeout: DefaultHandshakeTimeout,
	}

	if cfg != nil {
		if cfg.Scheme != "" {
			s.scheme = cfg.Scheme
		}
		if cfg.FallbackURL != "" {
			s.fallbackURL = cfg.FallbackURL
		}
		if cfg.FrameInterval > 0 {
			s.frameInterval = cfg.FrameInterval
		}
		if cfg.HandshakeTimeout > 0 {
			s.handshakeTimeout = cfg.HandshakeTimeout
		}
		s.console = cfg.Console
	}

	if s.console == nil {
		s.console = console.New()
	}

	return s
}

func (s *session) Status() Status {
	s.RLock()
	defer s.RUnlock()

	return s.status
}

func (s *session) Console() *console.Console {
	return s.console
}

func (s *session) Connect(ctx context.Context, p *profile.Profile) error {
	dialCtx, cancelDial := context.WithCancel(ctx)
	defer cancelDial()

	s.Lock()
	if s.status == StatusConnected || s.status == StatusConnecting {
		s.Unlock()
		return ErrSessionActive
	}
	s.status = StatusConnecting
	s.attempt++
	attempt := s.attempt
	s.cancelDial = cancelDial
	s.Unlock()

	s.console.Add(fmt.Sprintf("Initializing %s tunnel to %s...", p.Protocol, p.Address()), console.TypeSystem)

	if p.Protocol.Simulated() {
		s.console.Add(fmt.Sprintf("Sandbox Restriction: Direct %s not supported natively.", p.Protocol), console.TypeError)
		s.console.Add("Switching to Simulation/WebSocket Mode...", console.TypeSystem)
	}

	target := ResolveTarget(s.scheme, s.fallbackURL, p)
	s.console.Add(fmt.Sprintf("Resolving host: %s...", p.Host), console.TypeSystem)

	u, err := url.Parse(target)
	if err != nil {
		s.Lock()
		if s.attempt == attempt {
			s.status = StatusError
			s.cancelDial = nil
		}
		s.Unlock()
		s.console.Add(fmt.Sprintf("Critical Error: %v", err), console.TypeError)
		return fmt.Errorf("invalid target %s: %v", target, err)
	}

	logger.Infof("[session] dial %s ...", u)
	dialer := &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: s.handshakeTimeout,
	}
	conn, _, err := dialer.DialContext(dialCtx, u.String(), nil)
	if err != nil {
		s.Lock()
		current := s.attempt == attempt
		if current {
			s.status = StatusDisconnected
			s.cancelDial = nil
		}
		s.Unlock()

		if !current {
			// disconnected while dialing
			s.console.Add("Connection closed.", console.TypeSystem)
			return nil
		}

		s.console.Add(connectionErrorMessage, console.TypeError)
		s.console.Add("Connection closed.", console.TypeSystem)
		return fmt.Errorf("failed to connect %s: %v", u, err)
	}

	s.Lock()
	if s.attempt != attempt {
		// disconnected while dialing
		s.Unlock()
		conn.Close()
		s.console.Add("Connection closed.", console.TypeSystem)
		return nil
	}
	s.conn = conn
	s.status = StatusConnected
	s.cancelDial = nil
	s.Unlock()

	s.console.Add("Connection established successfully.", console.TypeSystem)

	done := make(chan struct{})

	if p.UsePayload {
		s.console.Add("Injecting payload...", console.TypeSystem)
		go s.inject(conn, p.Frames(), done)
	} else if err := s.write(conn, KeepAliveMessage); err != nil {
		logger.Errorf("[session] failed to write keep alive: %v", err)
	}

	go func() {
		select {
		case <-ctx.Done():
			s.release(conn)
		case <-done:
		}
	}()

	err = s.listen(conn)
	close(done)

	s.Lock()
	if s.conn == conn {
		s.conn = nil
		s.status = StatusDisconnected
	}
	s.Unlock()
	conn.Close()

	s.console.Add("Connection closed.", console.TypeSystem)

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return err
}

func (s *session) Disconnect() error {
	s.Lock()
	conn := s.conn
	s.conn = nil
	s.status = StatusDisconnected
	s.attempt++
	if s.cancelDial != nil {
		s.cancelDial()
		s.cancelDial = nil
	}
	s.Unlock()

	var err error
	if conn != nil {
		err = s.close(conn)
	}

	s.console.Add("User initiated disconnect.", console.TypeSystem)
	return err
}

func (s *session) listen(conn *websocket.Conn) error {
	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if !s.isCurrent(conn) || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			logger.Errorf("[session] read err: %s (type: %d)", err, mt)
			s.console.Add(connectionErrorMessage, console.TypeError)
			return fmt.Errorf("read err: %v", err)
		}

		s.console.Add(string(message), console.TypeRx)
	}
}

// inject writes frames one interval apart, stopping once conn is no longer
// the active connection.
func (s *session) inject(conn *websocket.Conn, frames []string, done <-chan struct{}) {
	for index, frame := range frames {
		if index > 0 {
			timer := time.NewTimer(s.frameInterval)
			select {
			case <-done:
				timer.Stop()
				return
			case <-timer.C:
			}
		}

		if !s.isCurrent(conn) {
			return
		}

		if err := s.write(conn, frame); err != nil {
			logger.Errorf("[session][tx] failed to write frame #%d: %v", index, err)
			return
		}

		s.console.Add(console.EscapeFrame(frame), console.TypeTx)
	}
}

func (s *session) write(conn *websocket.Conn, message string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return conn.WriteMessage(MessageTypeText, []byte(message))
}

func (s *session) isCurrent(conn *websocket.Conn) bool {
	s.RLock()
	defer s.RUnlock()

	return s.conn == conn
}

func (s *session) release(conn *websocket.Conn) {
	s.Lock()
	if s.conn == conn {
		s.conn = nil
		s.status = StatusDisconnected
	}
	s.Unlock()

	s.close(conn)
}

func (s *session) close(conn *websocket.Conn) error {
	message := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := conn.WriteControl(MessageTypeClose, message, time.Now().Add(time.Second)); err != nil {
		logger.Debugf("[session] failed to write close message: %v", err)
	}

	return conn.Close()
}
