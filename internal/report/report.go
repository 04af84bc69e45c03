// Package report renders sentiment snapshots for terminals and browsers.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/seenimoa/tickerpulse/internal/sentiment"
	"github.com/seenimoa/tickerpulse/pkg/models"
)

// ════════════════════════════════════════════════════════════════════
// Report Generator
// ════════════════════════════════════════════════════════════════════

// Format specifies the output format.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// ParseFormat maps a user-supplied name to a Format. "" means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown report format %q", s)
	}
}

// DefaultTopN caps the ranked headline list.
const DefaultTopN = 12

// Config controls report generation.
type Config struct {
	Title    string         // HTML page title (optional)
	TopN     int            // ranked rows shown (default: 12)
	Location *time.Location // zone for the generated-at stamp (default: local)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{TopN: DefaultTopN, Location: time.Local}
}

// Generate renders snap in the given format.
func Generate(snap *models.Snapshot, cfg Config, format Format) (string, error) {
	switch format {
	case FormatHTML:
		return GenerateHTML(snap, cfg)
	case FormatText, "":
		return GenerateText(snap, cfg)
	default:
		return "", fmt.Errorf("unknown report format %q", format)
	}
}

// GenerateHTML renders a standalone HTML page for snap.
func GenerateHTML(snap *models.Snapshot, cfg Config) (string, error) {
	if snap == nil {
		return "", fmt.Errorf("snapshot is nil")
	}

	tmpl, err := template.New("snapshot").Parse(SnapshotTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, buildReportData(snap, cfg)); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}

// GenerateText renders the terminal report: the snapshot block followed by
// the ranked headline list.
func GenerateText(snap *models.Snapshot, cfg Config) (string, error) {
	if snap == nil {
		return "", fmt.Errorf("snapshot is nil")
	}
	return renderText(buildReportData(snap, cfg)), nil
}

// ════════════════════════════════════════════════════════════════════
// Report Data
// ════════════════════════════════════════════════════════════════════

// ReportData is the flattened model shared by both renderers.
type ReportData struct {
	Title       string
	Symbol      string
	Name        string // "n/a" when unknown
	SourceMode  string // "headline + body" or "headline only"
	Source      string // news source that produced the rows
	GeneratedAt string

	Count  int
	Avg    string
	Median string
	Pos    int
	Neu    int
	Neg    int

	TopN int
	Rows []RowView
}

// RowView is one ranked headline.
type RowView struct {
	Tag       string
	Compound  string
	Class     string // CSS class: pos, neu, neg
	Published string
	Publisher string
	Title     string
	Link      string
}

func buildReportData(s *models.Snapshot, cfg Config) ReportData {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	d := ReportData{
		Title:      cfg.Title,
		Symbol:     s.Symbol,
		Name:       s.Name,
		SourceMode: "headline only",
		Source:     s.Source,
		Count:      s.Summary.Count,
		Avg:        signed(s.Summary.AvgCompound),
		Median:     signed(s.Summary.MedianCompound),
		Pos:        s.Summary.Pos,
		Neu:        s.Summary.Neu,
		Neg:        s.Summary.Neg,
		TopN:       topN(cfg.TopN, s.RequestedLimit, len(s.Rows)),
	}
	if d.Name == "" {
		d.Name = "n/a"
	}
	if d.Title == "" {
		d.Title = "News Sentiment: " + s.Symbol
	}
	if s.UsedBody {
		d.SourceMode = "headline + body"
	}
	if !s.GeneratedAt.IsZero() {
		d.GeneratedAt = s.GeneratedAt.In(loc).Format("2006-01-02 15:04 MST")
	}

	for _, r := range s.Rows[:d.TopN] {
		d.Rows = append(d.Rows, RowView{
			Tag:       sentiment.Tag(r.Compound),
			Compound:  fmt.Sprintf("%+.3f", r.Compound),
			Class:     string(r.Label),
			Published: r.Published,
			Publisher: r.Publisher,
			Title:     r.Title,
			Link:      r.Link,
		})
	}
	return d
}

// topN is min(ceiling, limit, n). A non-positive ceiling selects DefaultTopN and a
// non-positive limit is ignored.
func topN(ceiling, limit, n int) int {
	if ceiling <= 0 {
		ceiling = DefaultTopN
	}
	k := ceiling
	if limit > 0 && limit < k {
		k = limit
	}
	if n < k {
		k = n
	}
	return k
}

func signed(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%+.3f", *v)
}

// ════════════════════════════════════════════════════════════════════
// Plain-text renderer
// ════════════════════════════════════════════════════════════════════

func renderText(d ReportData) string {
	var sb strings.Builder

	sb.WriteString("\n=== News Sentiment Snapshot ===\n")
	fmt.Fprintf(&sb, "Symbol:   %s\n", d.Symbol)
	fmt.Fprintf(&sb, "Name:     %s\n", d.Name)
	fmt.Fprintf(&sb, "Source:   %s\n", d.SourceMode)
	if d.Count == 0 {
		sb.WriteString("No news found.\n")
		return sb.String()
	}
	fmt.Fprintf(&sb, "Items: %d   Avg: %s   Median: %s   Breakdown: +%d / 0 %d / -%d\n\n",
		d.Count, d.Avg, d.Median, d.Pos, d.Neu, d.Neg)

	fmt.Fprintf(&sb, "Top %d recent items:\n", d.TopN)
	for _, r := range d.Rows {
		fmt.Fprintf(&sb, "[%s %s] %s | %s: %s\n", r.Tag, r.Compound, r.Published, r.Publisher, r.Title)
		fmt.Fprintf(&sb, "    %s\n", r.Link)
	}
	sb.WriteString("\n")
	return sb.String()
}
