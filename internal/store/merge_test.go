package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ownership-watch/internal/model"
)

func ev(link, title string) model.Event {
	return model.Event{
		TimeUTC: "2026-08-30T12:00:00Z",
		Region:  model.RegionUS,
		Source:  model.SourceSEC,
		Kind:    "8-K",
		Title:   title,
		Link:    link,
	}
}

func TestMergeAdmitsNewInOrder(t *testing.T) {
	seen := Seen{}

	admitted, ledger := Merge(seen, nil, []model.Event{ev("l1", "a"), ev("l2", "b")}, 10)

	require.Len(t, admitted, 2)
	assert.Equal(t, "l1", admitted[0].Link)
	assert.Equal(t, "l2", admitted[1].Link)
	assert.Equal(t, admitted, ledger)
	assert.Contains(t, seen, "l1")
	assert.Contains(t, seen, "l2")
}

func TestMergeDropsSeenAndEmptyKeys(t *testing.T) {
	seen := Seen{"l1": {}}

	admitted, ledger := Merge(seen, nil, []model.Event{
		ev("l1", "already seen"),
		ev("", ""), // no link, no title: no identity
		ev("l2", "new"),
	}, 10)

	require.Len(t, admitted, 1)
	assert.Equal(t, "l2", admitted[0].Link)
	assert.Len(t, ledger, 1)
}

func TestMergeTitleFallbackKey(t *testing.T) {
	seen := Seen{}

	admitted, _ := Merge(seen, nil, []model.Event{
		ev("", "same title"),
		ev("", "same title"),
	}, 10)

	// two linkless items with one title collapse to one event
	require.Len(t, admitted, 1)
	assert.Contains(t, seen, "same title")
}

func TestMergeDedupWithinBatch(t *testing.T) {
	seen := Seen{}

	admitted, _ := Merge(seen, nil, []model.Event{ev("l1", "a"), ev("l1", "a")}, 10)

	assert.Len(t, admitted, 1)
}

func TestMergePrependsAndTruncates(t *testing.T) {
	seen := Seen{}
	var ledger []model.Event
	for i := 0; i < 3; i++ {
		_, ledger = Merge(seen, ledger, []model.Event{ev(fmt.Sprintf("old-%d", i), "t")}, 10)
	}

	_, ledger = Merge(seen, ledger, []model.Event{ev("new-1", "t"), ev("new-2", "t")}, 4)

	require.Len(t, ledger, 4)
	assert.Equal(t, "new-1", ledger[0].Link)
	assert.Equal(t, "new-2", ledger[1].Link)
	// oldest entry fell off, its key stays seen
	assert.Contains(t, seen, "old-0")
}

func TestMergeTruncatedKeysNeverReappear(t *testing.T) {
	seen := Seen{}
	_, ledger := Merge(seen, nil, []model.Event{ev("l1", "a"), ev("l2", "b")}, 1)
	require.Len(t, ledger, 1)

	// l2 was truncated out immediately; replaying it admits nothing
	admitted, ledger := Merge(seen, ledger, []model.Event{ev("l2", "b")}, 1)

	assert.Empty(t, admitted)
	assert.Len(t, ledger, 1)
}

func TestMergeIdempotentRerun(t *testing.T) {
	feed := []model.Event{ev("l1", "a"), ev("l2", "b"), ev("l3", "c")}
	seen := Seen{}

	first, ledger := Merge(seen, nil, feed, 10)
	require.Len(t, first, 3)

	second, ledger2 := Merge(seen, ledger, feed, 10)

	assert.Empty(t, second)
	assert.Equal(t, ledger, ledger2)
	assert.Len(t, seen, 3)
}
