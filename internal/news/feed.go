package news

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/rss"

	"github.com/seenimoa/tickerpulse/internal/infra"
	"github.com/seenimoa/tickerpulse/pkg/models"
)

// sourceKey is the gofeed.Item.Custom key holding the RSS <source> title.
const sourceKey = "source"

// feedClient downloads and parses RSS/Atom feeds. It is shared by the
// feed-based fetchers.
type feedClient struct {
	http   *infra.Client
	logger *slog.Logger
}

func newFeedClient(httpClient *infra.Client, logger *slog.Logger) feedClient {
	if httpClient == nil {
		httpClient = infra.NewClient(0, "")
	}
	return feedClient{http: httpClient, logger: infra.OrDefault(logger)}
}

// fetch downloads url and converts its entries to NewsItems. Any failure
// is logged at debug level and yields nil.
func (c feedClient) fetch(ctx context.Context, source, url string) []models.NewsItem {
	data, err := c.http.GetBytes(ctx, url, map[string]string{
		"Accept": "application/rss+xml, application/xml;q=0.9, */*;q=0.8",
	})
	if err != nil {
		c.logger.Debug("feed fetch failed", "source", source, "url", url, "err", err)
		return nil
	}

	items, err := parseFeed(data)
	if err != nil {
		c.logger.Debug("feed parse failed", "source", source, "url", url, "err", err)
		return nil
	}
	return items
}

// parseFeed parses a feed document. Entries missing a title, link or
// date are dropped.
func parseFeed(data []byte) ([]models.NewsItem, error) {
	fp := gofeed.NewParser()
	fp.RSSTranslator = &sourceTranslator{}

	feed, err := fp.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := make([]models.NewsItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		var ts int64
		switch {
		case it.PublishedParsed != nil:
			ts = it.PublishedParsed.Unix()
		case it.UpdatedParsed != nil:
			ts = it.UpdatedParsed.Unix()
		}
		item, ok := newItem(cleanHTML(it.Title), it.Link, publisherOf(it), ts)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// publisherOf prefers the RSS <source> element, then the first author.
func publisherOf(it *gofeed.Item) string {
	if s := strings.TrimSpace(it.Custom[sourceKey]); s != "" {
		return s
	}
	for _, a := range it.Authors {
		if a != nil && strings.TrimSpace(a.Name) != "" {
			return a.Name
		}
	}
	return ""
}

// sourceTranslator is the default RSS translator plus the per-item
// <source> title, which news aggregators use to name the publisher.
type sourceTranslator struct {
	gofeed.DefaultRSSTranslator
}

func (t *sourceTranslator) Translate(feed interface{}) (*gofeed.Feed, error) {
	rssFeed, ok := feed.(*rss.Feed)
	if !ok {
		return nil, fmt.Errorf("feed did not match expected type of *rss.Feed")
	}

	out, err := t.DefaultRSSTranslator.Translate(rssFeed)
	if err != nil {
		return nil, err
	}

	for i, it := range rssFeed.Items {
		if i >= len(out.Items) || it.Source == nil {
			continue
		}
		if out.Items[i].Custom == nil {
			out.Items[i].Custom = make(map[string]string)
		}
		out.Items[i].Custom[sourceKey] = it.Source.Title
	}
	return out, nil
}

// cleanHTML strips HTML tags and entities from a string using goquery.
func cleanHTML(s string) string {
	if s == "" || !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}
