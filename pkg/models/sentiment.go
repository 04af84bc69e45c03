package models

import "time"

// SentimentLabel classifies a compound score.
type SentimentLabel string

const (
	LabelPositive SentimentLabel = "pos"
	LabelNeutral  SentimentLabel = "neu"
	LabelNegative SentimentLabel = "neg"
)

// ScoredRow is a headline with its sentiment.
type ScoredRow struct {
	Published string         `json:"published"` // "2006-01-02 15:04", local time
	Publisher string         `json:"publisher"`
	Title     string         `json:"title"`
	Link      string         `json:"link"`
	Compound  float64        `json:"compound"` // -1.0 .. +1.0
	Label     SentimentLabel `json:"label"`
}

// Summary aggregates a set of scored rows.
// AvgCompound and MedianCompound are nil when Count is 0.
type Summary struct {
	Count          int      `json:"count"`
	AvgCompound    *float64 `json:"avg_compound"`
	MedianCompound *float64 `json:"median_compound"`
	Pos            int      `json:"pos"`
	Neu            int      `json:"neu"`
	Neg            int      `json:"neg"`
}

// Snapshot is the full answer to a sentiment query.
type Snapshot struct {
	ID             string      `json:"id"`
	Symbol         string      `json:"symbol"`
	Name           string      `json:"name,omitempty"`
	RequestedLimit int         `json:"requested_limit"`
	UsedBody       bool        `json:"used_body"`
	Source         string      `json:"source"` // news source that produced the rows; "" when none did
	Summary        Summary     `json:"summary"`
	Rows           []ScoredRow `json:"rows"`
	GeneratedAt    time.Time   `json:"generated_at"`
}
