// Package pipeline runs one collection cycle: pull candidates from all
// sources, merge them against the persisted identity state, then write
// back state and exports in one pass at the end. A failure in one
// region's feed never blocks the other region, and nothing is persisted
// until all collection is done, so a mid-run crash leaves the previous
// state untouched.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"ownership-watch/internal/metrics"
	"ownership-watch/internal/model"
	"ownership-watch/internal/sink"
	"ownership-watch/internal/source"
	"ownership-watch/internal/store"
)

type Pipeline struct {
	Sources   []source.Source
	Store     store.Store
	Sinks     []sink.Sink
	Metrics   *metrics.Metrics // optional
	MaxEvents int
}

// Summary of one completed run.
type Summary struct {
	RunID    string
	Admitted int
	Ledger   int
}

// Run executes one cycle. The returned error joins any primary-feed
// failures (the run still completed for the healthy regions) with any
// persistence failure.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	runID := uuid.NewString()
	start := time.Now()

	var candidates []model.Event
	admittedBySource := map[string]int{}
	var errs []error
	for _, src := range p.Sources {
		evs, err := src.Collect(ctx)
		if err != nil {
			log.Printf("run %s: collect %s: %v", runID, src.Name(), err)
			if p.Metrics != nil {
				p.Metrics.CollectErrors.WithLabelValues(src.Name()).Inc()
			}
			errs = append(errs, fmt.Errorf("collect %s: %w", src.Name(), err))
			continue
		}
		log.Printf("run %s: %s yielded %d candidate(s)", runID, src.Name(), len(evs))
		candidates = append(candidates, evs...)
	}

	seen := p.Store.LoadSeen()
	ledger := p.Store.LoadLedger()
	admitted, ledger := store.Merge(seen, ledger, candidates, p.MaxEvents)
	for _, ev := range admitted {
		admittedBySource[ev.Source]++
	}

	if err := p.Store.SaveSeen(seen); err != nil {
		return Summary{}, fmt.Errorf("save seen: %w", err)
	}
	if err := p.Store.SaveLedger(ledger); err != nil {
		return Summary{}, fmt.Errorf("save ledger: %w", err)
	}
	for _, sk := range p.Sinks {
		if err := sk.Write(ledger); err != nil {
			return Summary{}, fmt.Errorf("sink %s: %w", sk.Name(), err)
		}
	}

	if p.Metrics != nil {
		for src, n := range admittedBySource {
			p.Metrics.AdmittedTotal.WithLabelValues(src).Add(float64(n))
		}
		p.Metrics.ObserveRun(len(ledger), time.Since(start))
	}

	sum := Summary{RunID: runID, Admitted: len(admitted), Ledger: len(ledger)}
	log.Printf("run %s: admitted %d new event(s), ledger size %d, took %s",
		runID, sum.Admitted, sum.Ledger, time.Since(start).Truncate(time.Millisecond))
	return sum, errors.Join(errs...)
}
