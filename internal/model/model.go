package model

import "time"

// Region of the disclosing jurisdiction.
type Region string

const (
	RegionUS Region = "US"
	RegionDE Region = "DE"
)

// Source names, one per collector.
const (
	SourceSEC          = "SEC"
	SourceFrankfurtRSS = "DE_EXCHANGE_NEWS"
)

// Event is the normalized representation of one observed disclosure.
// Every field is always present; empty string means "unknown", so the
// tabular export column set stays fixed.
type Event struct {
	TimeUTC string `json:"time_utc"` // observation instant, RFC 3339 UTC
	Region  Region `json:"region"`
	Source  string `json:"source"`
	Kind    string `json:"event"`   // SEC form code or "Stimmrechte"
	Buyer   string `json:"buyer"`   // notifying party
	Target  string `json:"target"`  // issuer / subject entity
	Percent string `json:"percent"` // new holding as decimal string, "" if n/a
	Title   string `json:"title"`
	Link    string `json:"link"`
}

// Key is the dedup identity: the link, or the title when the feed item
// carries no link. Two distinct disclosures sharing a title and no link
// collapse to one key; inherited behavior, kept as-is.
func (e Event) Key() string {
	if e.Link != "" {
		return e.Link
	}
	return e.Title
}

// Columns is the fixed header of the tabular export, in wire order.
var Columns = []string{"time_utc", "region", "source", "event", "buyer", "target", "percent", "title", "link"}

// Row renders the event in Columns order.
func (e Event) Row() []string {
	return []string{e.TimeUTC, string(e.Region), e.Source, e.Kind, e.Buyer, e.Target, e.Percent, e.Title, e.Link}
}

// NowUTC formats t as the observation timestamp.
func NowUTC(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
