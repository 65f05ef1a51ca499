package source

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"ownership-watch/internal/config"
	"ownership-watch/internal/extract"
	"ownership-watch/internal/feed"
	"ownership-watch/internal/fetch"
	"ownership-watch/internal/model"
)

// KindStimmrechte labels German voting-rights notifications. The feed
// itself is general exchange news; we recognize the EQS voting-rights
// items by their title markers.
const KindStimmrechte = "Stimmrechte"

type frankfurtSource struct {
	cfg    config.FrankfurtConfig
	client *fetch.Client
	now    func() time.Time
}

func NewFrankfurt(cfg config.FrankfurtConfig, client *fetch.Client) Source {
	return &frankfurtSource{cfg: cfg, client: client, now: time.Now}
}

func (s *frankfurtSource) Name() string { return "frankfurt" }

// Collect scans at most MaxItems feed entries (bounding per-run network
// cost, one document fetch per kept item). The feed fetch itself is the
// only fatal failure; a per-item document fetch that fails just leaves
// notifier and percent empty for that event.
func (s *frankfurtSource) Collect(ctx context.Context) ([]model.Event, error) {
	raw, err := s.client.Get(ctx, s.cfg.FeedURL)
	if err != nil {
		return nil, err
	}
	items, err := feed.Parse(raw)
	if err != nil {
		return nil, err
	}
	if len(items) > s.cfg.MaxItems {
		items = items[:s.cfg.MaxItems]
	}

	var out []model.Event
	for _, it := range items {
		if !isVotingRights(it.Title) {
			continue
		}

		issuer := extract.IssuerFromTitle(it.Title)
		notifier, percent := s.fetchDetails(ctx, it.Link)

		out = append(out, model.Event{
			TimeUTC: model.NowUTC(s.now()),
			Region:  model.RegionDE,
			Source:  model.SourceFrankfurtRSS,
			Kind:    KindStimmrechte,
			Buyer:   notifier,
			Target:  issuer,
			Percent: percent,
			Title:   it.Title,
			Link:    it.Link,
		})
	}
	return out, nil
}

func isVotingRights(title string) bool {
	if !strings.Contains(title, "EQS") {
		return false
	}
	return strings.Contains(title, "Stimmrechte") || strings.Contains(title, "Stimmrechtsmitteilung")
}

// fetchDetails pulls the linked notification document and runs the text
// heuristics over it. Best effort throughout.
func (s *frankfurtSource) fetchDetails(ctx context.Context, link string) (notifier, percent string) {
	if link == "" {
		return "", ""
	}
	body, err := s.client.Get(ctx, link)
	if err != nil {
		log.Printf("frankfurt: document fetch degraded: %v", err)
		return "", ""
	}
	text := extract.Normalize(string(body))
	notifier = extract.NotifierFromText(text)
	if p := extract.PercentFromText(text).New; p != nil {
		percent = strconv.FormatFloat(*p, 'f', -1, 64)
	}
	return notifier, percent
}
