package models

// NewsItem is a single headline as produced by a news source.
// Title, Link and PublishedAt are always set; Publisher may be empty.
type NewsItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Publisher   string `json:"publisher"`
	PublishedAt int64  `json:"ts"` // epoch seconds
}

// ResolvedSymbol is the canonical market symbol for a query.
type ResolvedSymbol struct {
	Symbol string `json:"symbol"`         // uppercase, e.g. "NVDA", "RY.TO"
	Name   string `json:"name,omitempty"` // empty when no display name could be found
}

// SymbolMatch is one candidate returned by a symbol search.
type SymbolMatch struct {
	Symbol    string `json:"symbol"`
	QuoteType string `json:"quote_type"` // "EQUITY", "ETF", "INDEX", ...
	LongName  string `json:"long_name,omitempty"`
	ShortName string `json:"short_name,omitempty"`
	Exchange  string `json:"exchange,omitempty"`
}
