package yfinance

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// ErrNoName is returned when an endpoint answered but carried no display name.
var ErrNoName = errors.New("yfinance: no name for symbol")

// QuoteName looks up the display name from the v7 quote endpoint,
// preferring shortName over longName.
func (c *Client) QuoteName(ctx context.Context, symbol string) (string, error) {
	u := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", c.baseURL, url.QueryEscape(symbol))

	var resp yfQuoteResponse
	if err := c.fetchJSON(ctx, u, &resp); err != nil {
		return "", fmt.Errorf("yfinance quote %s: %w", symbol, err)
	}
	if resp.QuoteResponse.Error != nil {
		return "", fmt.Errorf("yfinance API error: %s", resp.QuoteResponse.Error.Description)
	}
	if len(resp.QuoteResponse.Result) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoName, symbol)
	}

	r := resp.QuoteResponse.Result[0]
	name := coalesce(r.ShortName, r.LongName)
	if name == "" {
		return "", fmt.Errorf("%w: %s", ErrNoName, symbol)
	}
	return name, nil
}

// FastInfoName looks up the display name from the v8 chart metadata.
// It is a lighter endpoint that often works when the quote endpoint does not.
func (c *Client) FastInfoName(ctx context.Context, symbol string) (string, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?range=1d&interval=1d", c.baseURL, url.PathEscape(symbol))

	var resp yfChartResponse
	if err := c.fetchJSON(ctx, u, &resp); err != nil {
		return "", fmt.Errorf("yfinance chart %s: %w", symbol, err)
	}
	if resp.Chart.Error != nil {
		return "", fmt.Errorf("yfinance chart error: %s", resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoName, symbol)
	}

	meta := resp.Chart.Result[0].Meta
	name := coalesce(meta.ShortName, meta.LongName)
	if name == "" {
		return "", fmt.Errorf("%w: %s", ErrNoName, symbol)
	}
	return name, nil
}
