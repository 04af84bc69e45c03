package yfinance

// --- Yahoo Finance API response types ---

// yfQuoteResponse wraps the v7 quote API response.
type yfQuoteResponse struct {
	QuoteResponse struct {
		Result []yfQuoteResult `json:"result"`
		Error  *yfError        `json:"error"`
	} `json:"quoteResponse"`
}

type yfQuoteResult struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortName"`
	LongName  string `json:"longName"`
	QuoteType string `json:"quoteType"`
}

// yfChartResponse wraps the v8 chart API response. Only the metadata
// block is used; it carries the instrument names without a full quote call.
type yfChartResponse struct {
	Chart struct {
		Result []yfChartResult `json:"result"`
		Error  *yfError        `json:"error"`
	} `json:"chart"`
}

type yfChartResult struct {
	Meta yfChartMeta `json:"meta"`
}

type yfChartMeta struct {
	Symbol         string `json:"symbol"`
	ShortName      string `json:"shortName"`
	LongName       string `json:"longName"`
	InstrumentType string `json:"instrumentType"`
}

// yfSearchResponse wraps the v1 search API response. News entries are kept
// loosely typed: their field names vary between API revisions.
type yfSearchResponse struct {
	Quotes []yfSearchQuote  `json:"quotes"`
	News   []map[string]any `json:"news"`
}

type yfSearchQuote struct {
	Exchange  string `json:"exchange"`
	ShortName string `json:"shortname"`
	LongName  string `json:"longname"`
	QuoteType string `json:"quoteType"`
	Symbol    string `json:"symbol"`
	Ticker    string `json:"ticker"`
}

type yfError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
