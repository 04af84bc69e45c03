// Package prompts holds the system prompts and stage names used by the
// tickerpulse agent.
package prompts

import "strings"

// ── Stage Names (canonical identifiers) ──

const (
	StageParseInput = "parse_input"
	StageSearchNews = "search_news"

	// RouteNewsDone is appended to the parent route once the news agent
	// has produced a result.
	RouteNewsDone = "news_agent_done"
)

// ── System Prompts ──

// ExtractorSystemPrompt makes the model return exactly one JSON object
// naming the company and the number of headlines requested.
const ExtractorSystemPrompt = `You extract a company (ticker or name) and how many news items to fetch
from a user's stock news request.

Output EXACTLY one JSON object, with no spaces and no newline:
{"company":"<VALUE>","items":<N>}

Company rules:
- VALUE can be:
  * A stock ticker (NVDA, AAPL, RY.TO, SHOP.TO, QQQ)
  * OR an official company or index name (Nvidia, S&P 500, Royal Bank of Canada)
- Fix obvious typos.
- Map vague phrases to the most likely company, for example:
  "the iphone company" -> "Apple"
  "google stock" -> "Alphabet"
  "NVDA stock" -> "NVDA"
- If multiple companies appear, pick the MAIN one the user is asking about.
- If you truly cannot infer any company, use null.

Items rules:
- Extract explicit amounts ("top 5", "last 20", "show 3 headlines").
- Must be a positive integer.
- If no number is found, use null.

No explanations. No extra keys. No spaces anywhere.`

// ExtractorUserPrompt wraps the raw user request.
func ExtractorUserPrompt(prompt string) string {
	return "Prompt: " + strings.TrimSpace(prompt)
}
