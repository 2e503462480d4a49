// Package eventlog records the human-readable messages shown in the game's
// console panel.
package eventlog

import "fmt"

// Kind classifies a log entry.
type Kind int

const (
	KindSystem Kind = iota
	KindCollision
	KindCombat
	KindMovement
	KindDeath
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindSystem:
		return "system"
	case KindCollision:
		return "collision"
	case KindCombat:
		return "combat"
	case KindMovement:
		return "movement"
	case KindDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Entry is one logged event. Seq numbers start at 0 and never repeat.
type Entry struct {
	Seq  int
	Kind Kind
	Text string
}

// Log is an append-only, ordered list of entries.
type Log struct {
	entries []Entry
}

// New creates an empty log.
func New() *Log {
	return &Log{}
}

// Add appends a formatted entry and returns it.
func (l *Log) Add(kind Kind, format string, args ...any) Entry {
	e := Entry{Seq: len(l.entries), Kind: kind, Text: fmt.Sprintf(format, args...)}
	l.entries = append(l.entries, e)
	return e
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Last returns the newest entry, or false when the log is empty.
func (l *Log) Last() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Tail returns up to n of the newest entries, oldest first.
func (l *Log) Tail(n int) []Entry {
	if n <= 0 {
		return nil
	}
	start := max(len(l.entries)-n, 0)
	out := make([]Entry, len(l.entries)-start)
	copy(out, l.entries[start:])
	return out
}

// Entries returns a copy of every entry.
func (l *Log) Entries() []Entry {
	return l.Tail(len(l.entries))
}
