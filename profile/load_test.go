package profile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	s, err := Load("testdata/profiles.yaml")
	require.NoError(t, err)

	local, err := s.Get("local")
	require.NoError(t, err)
	require.Equal(t, "Local Echo", local.Name)
	require.Equal(t, "8080", local.Port)
	require.Equal(t, ProtocolWebSocket, local.Protocol)
	require.True(t, local.UsePayload)
	require.Equal(t, []string{"GET / HTTP/1.1\r\nHost: 127.0.0.1:8080\r\n\r\n", "PING"}, local.Frames())

	ssh, err := s.Find("SSH Over Echo")
	require.NoError(t, err)
	require.Equal(t, DefaultPort, ssh.Port)
	require.Equal(t, ProtocolSSH, ssh.Protocol)
	require.Equal(t, "root", ssh.Username)
	require.False(t, ssh.UsePayload)

	_, err = s.Get(DefaultID)
	require.NoError(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	require.Error(t, err)
}

func TestFileProfileInvalidProtocol(t *testing.T) {
	fp := &FileProfile{Host: "a.com", Protocol: "quic"}
	_, err := fp.Profile()
	require.ErrorIs(t, err, ErrInvalidProtocol)
}
