package sink

import "ownership-watch/internal/model"

// Sink renders the current ledger to some durable representation. Sinks
// rewrite their output in full on every run; nothing is appended.
type Sink interface {
	Name() string
	Write(events []model.Event) error
}
