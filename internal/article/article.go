// Package article downloads a linked news page and extracts its readable
// text, for scoring on more than the headline.
package article

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/seenimoa/tickerpulse/internal/infra"
)

// ErrNoContent is returned when a page has no extractable text.
var ErrNoContent = errors.New("article: no readable content")

// Article is the extracted content of a page.
type Article struct {
	URL      string
	Title    string
	Byline   string
	SiteName string
	Text     string
}

// Fetcher downloads pages and extracts their main content.
type Fetcher struct {
	http   *infra.Client
	logger *slog.Logger
}

// NewFetcher creates a Fetcher.
func NewFetcher(httpClient *infra.Client, logger *slog.Logger) *Fetcher {
	if httpClient == nil {
		httpClient = infra.NewClient(0, "")
	}
	return &Fetcher{http: httpClient, logger: infra.OrDefault(logger)}
}

// Fetch downloads link and extracts the article. Readability is tried
// first; pages it cannot handle fall back to the text of their <p> elements.
func (f *Fetcher) Fetch(ctx context.Context, link string) (Article, error) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.Host == "" {
		return Article{}, fmt.Errorf("article: invalid url %q", link)
	}

	html, err := f.http.GetBytes(ctx, u.String(), map[string]string{
		"Accept": "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8",
	})
	if err != nil {
		return Article{}, fmt.Errorf("article: fetch %s: %w", u.Host, err)
	}

	a, err := Extract(html, u)
	if err != nil {
		return Article{}, err
	}
	return a, nil
}

// Body returns the article title and text joined by a newline, trimmed.
// It satisfies the sentiment scorer's body source.
func (f *Fetcher) Body(ctx context.Context, link string) (string, error) {
	a, err := f.Fetch(ctx, link)
	if err != nil {
		f.logger.Debug("article body unavailable", "link", link, "err", err)
		return "", err
	}
	return strings.TrimSpace(a.Title + "\n" + a.Text), nil
}

// Extract parses an HTML document fetched from pageURL.
func Extract(html []byte, pageURL *url.URL) (Article, error) {
	a := Article{URL: pageURL.String()}

	parsed, err := readability.FromReader(bytes.NewReader(html), pageURL)
	if err == nil {
		a.Title = strings.TrimSpace(parsed.Title)
		a.Byline = strings.TrimSpace(parsed.Byline)
		a.SiteName = strings.TrimSpace(parsed.SiteName)
		a.Text = normalizeSpace(parsed.TextContent)
	}
	if a.Text != "" {
		return a, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return Article{}, fmt.Errorf("article: parse html: %w", err)
	}
	if a.Title == "" {
		a.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	var paras []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if t := normalizeSpace(s.Text()); t != "" {
			paras = append(paras, t)
		}
	})
	a.Text = strings.Join(paras, "\n")
	if a.Text == "" {
		return Article{}, ErrNoContent
	}
	return a, nil
}

// normalizeSpace collapses runs of whitespace within each line and drops
// blank lines.
func normalizeSpace(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, l := range lines {
		if l = strings.Join(strings.Fields(l), " "); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
