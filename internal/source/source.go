package source

import (
	"context"

	"ownership-watch/internal/model"
)

// Source turns one upstream feed into candidate events in the unified
// schema. A failed primary feed fetch is returned as an error; the
// caller decides how much of the run survives it.
type Source interface {
	Name() string
	Collect(ctx context.Context) ([]model.Event, error)
}
