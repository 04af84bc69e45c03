package yfinance

import (
	"context"
	"fmt"
	"net/url"

	"github.com/seenimoa/tickerpulse/pkg/models"
)

// Search runs a symbol search and returns matches in the order Yahoo ranked them.
func (c *Client) Search(ctx context.Context, query string) ([]models.SymbolMatch, error) {
	u := fmt.Sprintf("%s/v1/finance/search?q=%s&quotesCount=10&newsCount=0", c.baseURL, url.QueryEscape(query))

	var resp yfSearchResponse
	if err := c.fetchJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("yfinance search %q: %w", query, err)
	}

	matches := make([]models.SymbolMatch, 0, len(resp.Quotes))
	for _, q := range resp.Quotes {
		matches = append(matches, models.SymbolMatch{
			Symbol:    coalesce(q.Symbol, q.Ticker),
			QuoteType: q.QuoteType,
			LongName:  q.LongName,
			ShortName: q.ShortName,
			Exchange:  q.Exchange,
		})
	}
	return matches, nil
}

// News returns the raw news records Yahoo associates with a symbol.
// Records are returned untyped; see the news package for field extraction.
func (c *Client) News(ctx context.Context, symbol string) ([]map[string]any, error) {
	u := fmt.Sprintf("%s/v1/finance/search?q=%s&quotesCount=0&newsCount=%d", c.baseURL, url.QueryEscape(symbol), newsCount)

	var resp yfSearchResponse
	if err := c.fetchJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("yfinance news %s: %w", symbol, err)
	}
	return resp.News, nil
}
