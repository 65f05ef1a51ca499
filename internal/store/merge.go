package store

import "ownership-watch/internal/model"

// Merge folds candidate events into the persisted state. Candidates
// whose key is empty or already seen are dropped; the rest are admitted
// in input order, marked seen, and prepended to the ledger, which is
// then truncated to maxEvents. Truncation never removes keys from the
// seen set, so an event that ages out of the ledger can not come back.
// The seen set is updated in place.
func Merge(seen Seen, ledger []model.Event, candidates []model.Event, maxEvents int) (admitted []model.Event, updated []model.Event) {
	for _, ev := range candidates {
		key := ev.Key()
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		admitted = append(admitted, ev)
	}

	updated = make([]model.Event, 0, len(admitted)+len(ledger))
	updated = append(updated, admitted...)
	updated = append(updated, ledger...)
	if len(updated) > maxEvents {
		updated = updated[:maxEvents]
	}
	return admitted, updated
}
