package dash

import "time"

// LedgerCap is the number of activity entries the ledger retains.
const LedgerCap = 100

// EntryKind classifies an activity ledger entry.
type EntryKind int

const (
	KindBlock EntryKind = iota
	KindAlert
	KindConfig
	KindSystem
)

// String returns the ledger kind label used in the activity view.
func (k EntryKind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindAlert:
		return "alert"
	case KindConfig:
		return "config"
	case KindSystem:
		return "system"
	default:
		return "system"
	}
}

// Entry is one activity ledger record.
type Entry struct {
	Timestamp string
	Kind      EntryKind
	Message   string
}

// Ledger is the bounded, locally-authored audit trail of configuration
// actions and session events. Entries are kept newest first; inserting past
// the capacity evicts the oldest entry. The ledger is never written by the
// poll path.
type Ledger struct {
	capacity int
	entries  []Entry
	clock    func() time.Time
}

// NewLedger creates a ledger with the given capacity.
func NewLedger(capacity int) *Ledger {
	if capacity <= 0 {
		capacity = LedgerCap
	}
	return &Ledger{
		capacity: capacity,
		clock:    time.Now,
	}
}

// Record inserts an entry at the head and truncates to capacity.
func (l *Ledger) Record(kind EntryKind, message string) {
	e := Entry{
		Timestamp: l.clock().Format("15:04:05"),
		Kind:      kind,
		Message:   message,
	}
	l.entries = append([]Entry{e}, l.entries...)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.entries = nil
}

// Entries returns a copy of the entries, newest first.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries currently held.
func (l *Ledger) Len() int {
	return len(l.entries)
}
