package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ownership-watch/internal/config"
	"ownership-watch/internal/fetch"
	"ownership-watch/internal/model"
)

func testClient() *fetch.Client {
	return fetch.New(config.HTTPConfig{
		Timeout:   config.Duration(5 * time.Second),
		Retries:   0,
		RetryWait: config.Duration(time.Millisecond),
	}, "ownership-watch test")
}

const secAtom = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <title>8-K - ACME CORP (0001234567) (Filer)</title>
    <link rel="alternate" href="https://www.sec.gov/filing/1"/>
  </entry>
  <entry>
    <title>10-Q - OTHER CO (0007654321) (Filer)</title>
    <link rel="alternate" href="https://www.sec.gov/filing/2"/>
  </entry>
  <entry>
    <title>SC 13D - BIG FUND LP (0001112223) (Subject)</title>
    <link rel="alternate" href="https://www.sec.gov/filing/3"/>
  </entry>
</feed>`

func TestSECCollectFiltersForms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, secAtom)
	}))
	defer srv.Close()

	src := NewSEC(config.SECConfig{
		FeedURL: srv.URL,
		Forms:   []string{"SC 13D", "SC 13G", "8-K"},
	}, testClient())
	src.(*secSource).now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}

	evs, err := src.Collect(context.Background())

	require.NoError(t, err)
	require.Len(t, evs, 2)
	assert.Equal(t, model.Event{
		TimeUTC: "2026-08-30T12:00:00Z",
		Region:  model.RegionUS,
		Source:  model.SourceSEC,
		Kind:    "8-K",
		Title:   "8-K - ACME CORP (0001234567) (Filer)",
		Link:    "https://www.sec.gov/filing/1",
	}, evs[0])
	assert.Equal(t, "SC 13D", evs[1].Kind)
}

func TestSECCollectFeedFailureIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	src := NewSEC(config.SECConfig{FeedURL: srv.URL, Forms: []string{"8-K"}}, testClient())

	_, err := src.Collect(context.Background())

	assert.Error(t, err)
}
