// Package store keeps the cross-run state: the monotonically growing
// set of seen dedup keys and the bounded, newest-first event ledger.
package store

import "ownership-watch/internal/model"

// Seen is the identity set of dedup keys.
type Seen map[string]struct{}

// Store abstracts the persistence of seen-set and ledger. State is read
// in full at the start of a run and rewritten in full at the end; there
// are no partial updates. Loads recover from missing or corrupt state
// by returning the empty value, so a fresh environment just starts
// fresh.
type Store interface {
	LoadSeen() Seen
	SaveSeen(Seen) error
	LoadLedger() []model.Event
	SaveLedger([]model.Event) error
}
