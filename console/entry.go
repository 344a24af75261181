package console

import (
	"strings"
	"time"
)

type EntryType string

const (
	TypeInfo   EntryType = "info"
	TypeError  EntryType = "error"
	TypeTx     EntryType = "tx"
	TypeRx     EntryType = "rx"
	TypeSystem EntryType = "system"
)

// Entry is one line of the tunnel console.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Type      EntryType `json:"type"`
}

// EscapeFrame renders CRLF pairs of an outgoing frame as the literal text
// \r\n so a frame stays on one console line.
func EscapeFrame(frame string) string {
	return strings.ReplaceAll(frame, "\r\n", `\r\n`)
}
