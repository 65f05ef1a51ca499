// Package feed reduces RSS 2.0 and Atom documents to the three fields
// the collectors care about, in document order.
package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Item is one feed entry.
type Item struct {
	ID    string
	Title string
	Link  string
}

type rssDoc struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []struct {
			GUID  string `xml:"guid"`
			Title string `xml:"title"`
			Link  string `xml:"link"`
		} `xml:"item"`
	} `xml:"channel"`
}

type atomDoc struct {
	XMLName xml.Name `xml:"feed"`
	Entries []struct {
		ID    string `xml:"id"`
		Title string `xml:"title"`
		Links []struct {
			Rel  string `xml:"rel,attr"`
			Href string `xml:"href,attr"`
		} `xml:"link"`
	} `xml:"entry"`
}

// Parse decodes feed bytes, accepting either syntax. The SEC current
// filings feed is Atom, the Frankfurt news feed RSS 2.0.
func Parse(raw []byte) ([]Item, error) {
	var rss rssDoc
	if err := xml.Unmarshal(raw, &rss); err == nil {
		items := make([]Item, 0, len(rss.Channel.Items))
		for _, it := range rss.Channel.Items {
			items = append(items, Item{
				ID:    strings.TrimSpace(it.GUID),
				Title: strings.TrimSpace(it.Title),
				Link:  strings.TrimSpace(it.Link),
			})
		}
		return items, nil
	}

	var atom atomDoc
	if err := xml.Unmarshal(raw, &atom); err != nil {
		return nil, fmt.Errorf("feed: not rss or atom: %w", err)
	}
	items := make([]Item, 0, len(atom.Entries))
	for _, e := range atom.Entries {
		link := ""
		for _, l := range e.Links {
			if l.Rel == "" || l.Rel == "alternate" {
				link = l.Href
				break
			}
		}
		if link == "" && len(e.Links) > 0 {
			link = e.Links[0].Href
		}
		items = append(items, Item{
			ID:    strings.TrimSpace(e.ID),
			Title: strings.TrimSpace(e.Title),
			Link:  strings.TrimSpace(link),
		})
	}
	return items, nil
}
