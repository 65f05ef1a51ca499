package store

import "ownership-watch/internal/model"

// Memory is an in-process Store, used by tests and by dry runs that
// must not touch the state directory.
type Memory struct {
	seen   Seen
	ledger []model.Event
}

func NewMemory() *Memory {
	return &Memory{seen: Seen{}}
}

func (m *Memory) LoadSeen() Seen {
	cp := make(Seen, len(m.seen))
	for k := range m.seen {
		cp[k] = struct{}{}
	}
	return cp
}

func (m *Memory) SaveSeen(seen Seen) error {
	m.seen = seen
	return nil
}

func (m *Memory) LoadLedger() []model.Event {
	return append([]model.Event(nil), m.ledger...)
}

func (m *Memory) SaveLedger(events []model.Event) error {
	m.ledger = events
	return nil
}
