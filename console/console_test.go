package console

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConsoleAdd(t *testing.T) {
	c := New()

	first := c.Add("Connection established successfully.", TypeSystem)
	second := c.Add("hello", "")

	entries := c.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, first, entries[0])
	require.Equal(t, TypeInfo, entries[1].Type)
	require.Equal(t, second.ID, entries[1].ID)
	require.NotEqual(t, first.ID, second.ID)
	require.False(t, entries[1].Timestamp.Before(entries[0].Timestamp))
}

func TestConsoleEntriesIsCopy(t *testing.T) {
	c := New()
	c.Add("a", TypeRx)

	entries := c.Entries()
	entries[0].Message = "changed"

	require.Equal(t, "a", c.Entries()[0].Message)
}

func TestConsoleClear(t *testing.T) {
	c := New()
	c.Add("a", TypeTx)
	c.Add("b", TypeRx)

	c.Clear()
	require.Equal(t, 0, c.Len())
	require.Empty(t, c.Entries())
}

func TestConsoleMaxEntries(t *testing.T) {
	c := New(&Options{MaxEntries: 2})
	c.Add("a", TypeInfo)
	c.Add("b", TypeInfo)
	c.Add("c", TypeInfo)

	entries := c.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "b", entries[0].Message)
	require.Equal(t, "c", entries[1].Message)
}

func TestConsoleOnEntry(t *testing.T) {
	var got []Entry
	c := New(&Options{
		OnEntry: func(entry Entry) {
			got = append(got, entry)
		},
	})

	c.Add("boom", TypeError)
	require.Len(t, got, 1)
	require.Equal(t, TypeError, got[0].Type)
	require.Equal(t, "boom", got[0].Message)
}

func TestConsoleConcurrentAdd(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add("rx", TypeRx)
		}()
	}
	wg.Wait()

	require.Equal(t, 50, c.Len())
}

func TestEscapeFrame(t *testing.T) {
	require.Equal(t, `GET / HTTP/1.1\r\nHost: a.com\r\n\r\n`, EscapeFrame("GET / HTTP/1.1\r\nHost: a.com\r\n\r\n"))
	require.Equal(t, "a\nb", EscapeFrame("a\nb"))
}

func TestConsoleOnEntryFollowsHistoryOrder(t *testing.T) {
	var seen []string
	c := New(&Options{
		OnEntry: func(entry Entry) {
			seen = append(seen, entry.ID)
		},
	})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add("tx", TypeTx)
		}()
	}
	wg.Wait()

	var history []string
	for _, entry := range c.Entries() {
		history = append(history, entry.ID)
	}
	require.Equal(t, history, seen)
}
