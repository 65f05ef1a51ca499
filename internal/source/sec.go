package source

import (
	"context"
	"time"

	"ownership-watch/internal/config"
	"ownership-watch/internal/extract"
	"ownership-watch/internal/feed"
	"ownership-watch/internal/fetch"
	"ownership-watch/internal/model"
)

// secSource watches the EDGAR current-filings feed and keeps only the
// ownership-relevant form types (SC 13D, SC 13G, 8-K by default).
type secSource struct {
	cfg    config.SECConfig
	client *fetch.Client
	forms  map[string]struct{}
	now    func() time.Time
}

func NewSEC(cfg config.SECConfig, client *fetch.Client) Source {
	forms := make(map[string]struct{}, len(cfg.Forms))
	for _, f := range cfg.Forms {
		forms[f] = struct{}{}
	}
	return &secSource{cfg: cfg, client: client, forms: forms, now: time.Now}
}

func (s *secSource) Name() string { return "sec" }

func (s *secSource) Collect(ctx context.Context) ([]model.Event, error) {
	raw, err := s.client.Get(ctx, s.cfg.FeedURL)
	if err != nil {
		return nil, err
	}
	items, err := feed.Parse(raw)
	if err != nil {
		return nil, err
	}

	var out []model.Event
	for _, it := range items {
		form := extract.FormCode(it.Title)
		if _, ok := s.forms[form]; !ok {
			continue
		}
		out = append(out, model.Event{
			TimeUTC: model.NowUTC(s.now()),
			Region:  model.RegionUS,
			Source:  model.SourceSEC,
			Kind:    form,
			Buyer:   "",
			Target:  "",
			Percent: "",
			Title:   it.Title,
			Link:    it.Link,
		})
	}
	return out, nil
}
