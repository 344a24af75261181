package profile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStoreHasDefault(t *testing.T) {
	s := NewStore()

	p, err := s.Get(DefaultID)
	require.NoError(t, err)
	require.Equal(t, DefaultName, p.Name)
	require.Len(t, s.List(), 1)
}

func TestStoreAdd(t *testing.T) {
	s := NewStore()

	p, err := s.Add(&Profile{Host: "a.com", Port: "80", Protocol: ProtocolTCP})
	require.NoError(t, err)
	require.Len(t, p.ID, 21)
	require.Equal(t, "a.com:80", p.Name)

	got, err := s.Get(p.ID)
	require.NoError(t, err)
	require.Equal(t, p, got)

	_, err = s.Add(&Profile{Host: "", Port: "80", Protocol: ProtocolTCP})
	require.Error(t, err)
}

func TestStoreReturnsCopies(t *testing.T) {
	s := NewStore()

	p, _ := s.Get(DefaultID)
	p.Host = "mutated"

	again, _ := s.Get(DefaultID)
	require.Equal(t, DefaultHost, again.Host)
}

func TestStoreFindListRemove(t *testing.T) {
	s := NewStore()
	s.Add(&Profile{ID: "b", Name: "Bravo", Host: "b.com", Port: "443", Protocol: ProtocolWebSocket})
	s.Add(&Profile{ID: "a", Name: "Alpha", Host: "a.com", Port: "443", Protocol: ProtocolSSH})

	list := s.List()
	require.Len(t, list, 3)
	require.Equal(t, "Alpha", list[0].Name)
	require.Equal(t, "Bravo", list[1].Name)
	require.Equal(t, DefaultName, list[2].Name)

	p, err := s.Find("Bravo")
	require.NoError(t, err)
	require.Equal(t, "b", p.ID)

	p, err = s.Find("a")
	require.NoError(t, err)
	require.Equal(t, "Alpha", p.Name)

	require.NoError(t, s.Remove("a"))
	_, err = s.Find("Alpha")
	require.True(t, errors.Is(err, ErrNotFound))
	require.True(t, errors.Is(s.Remove("a"), ErrNotFound))
}

func TestStoreReset(t *testing.T) {
	s := NewStore()
	s.Add(&Profile{ID: "x", Host: "x.com", Port: "1", Protocol: ProtocolWebSocket})
	s.Remove(DefaultID)

	s.Reset()

	list := s.List()
	require.Len(t, list, 1)
	require.Equal(t, DefaultID, list[0].ID)
}
