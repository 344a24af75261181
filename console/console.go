// Package console keeps the ordered log of a tunnel session: system notices,
// errors, and the frames sent (tx) and received (rx).
package console

import (
	"sync"
	"time"

	"github.com/go-zoox/gztunnel/id"
	"github.com/go-zoox/logger"
)

type Console struct {
	sync.RWMutex
	// orders history appends with the logger mirror and OnEntry
	emitMu sync.Mutex

	entries []Entry
	max     int

	onEntry func(entry Entry)
}

type Options struct {
	// MaxEntries caps the history, oldest first out. 0 keeps everything.
	MaxEntries int
	// OnEntry sees entries in history order. It must not call Add.
	OnEntry func(entry Entry)
}

func New(opts ...*Options) *Console {
	c := &Console{}
	if len(opts) == 1 && opts[0] != nil {
		c.max = opts[0].MaxEntries
		c.onEntry = opts[0].OnEntry
	}

	return c
}

// Add appends a message and mirrors it to the process logger.
func (c *Console) Add(message string, typ EntryType) Entry {
	if typ == "" {
		typ = TypeInfo
	}

	entry := Entry{
		ID:        id.Generate(),
		Timestamp: time.Now(),
		Message:   message,
		Type:      typ,
	}

	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	c.Lock()
	c.entries = append(c.entries, entry)
	if c.max > 0 && len(c.entries) > c.max {
		c.entries = append([]Entry(nil), c.entries[len(c.entries)-c.max:]...)
	}
	onEntry := c.onEntry
	c.Unlock()

	switch typ {
	case TypeError:
		logger.Error("[console][%s] %s", typ, message)
	case TypeTx, TypeRx:
		logger.Info("[console][%s] %s", typ, message)
	default:
		logger.Info("[console] %s", message)
	}

	if onEntry != nil {
		onEntry(entry)
	}

	return entry
}

// Entries returns a copy of the history in insertion order.
func (c *Console) Entries() []Entry {
	c.RLock()
	defer c.RUnlock()

	entries := make([]Entry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

func (c *Console) Clear() {
	c.Lock()
	c.entries = nil
	c.Unlock()
}

func (c *Console) Len() int {
	c.RLock()
	defer c.RUnlock()

	return len(c.entries)
}
