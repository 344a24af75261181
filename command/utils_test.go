package command

import (
	"testing"

	"github.com/go-zoox/gztunnel/profile"
	"github.com/stretchr/testify/require"
)

func TestParseEndpoint(t *testing.T) {
	e, err := parseEndpoint("wss://echo.websocket.org")
	require.NoError(t, err)
	require.Equal(t, &endpoint{Scheme: "wss", Host: "echo.websocket.org", Port: "443"}, e)

	e, err = parseEndpoint("ws://127.0.0.1:8080/echo")
	require.NoError(t, err)
	require.Equal(t, &endpoint{Scheme: "ws", Host: "127.0.0.1", Port: "8080"}, e)

	e, err = parseEndpoint("ws://localhost")
	require.NoError(t, err)
	require.Equal(t, "80", e.Port)

	for _, raw := range []string{"http://a.com", "wss://", "wss://a.com:port", "::"} {
		_, err := parseEndpoint(raw)
		require.Error(t, err, raw)
	}
}

func TestApplyProfileFlags(t *testing.T) {
	p := profile.Default()
	usePayload := false

	err := applyProfileFlags(p, &profileFlags{
		Host:       " 127.0.0.1 ",
		Port:       "8080",
		Protocol:   "ssh",
		Payload:    "[host][split][port]",
		UsePayload: &usePayload,
	})
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", p.Host)
	require.Equal(t, "8080", p.Port)
	require.Equal(t, profile.ProtocolSSH, p.Protocol)
	require.False(t, p.UsePayload)
	require.Equal(t, []string{"127.0.0.1", "8080"}, p.Frames())
}

func TestApplyProfileFlagsKeepsProfile(t *testing.T) {
	p := profile.Default()

	require.NoError(t, applyProfileFlags(p, &profileFlags{}))
	require.Equal(t, profile.Default(), p)

	require.Error(t, applyProfileFlags(p, &profileFlags{Protocol: "quic"}))
	require.Error(t, applyProfileFlags(profile.Default(), &profileFlags{Port: "70000"}))
}
