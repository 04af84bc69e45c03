// Package sentiment scores headline polarity and summarizes scored rows.
//
// The Analyzer is a lexicon and rule based engine in the style of VADER:
// each known word carries a valence, neighbouring words intensify or flip
// it, and the summed valence is squashed into a compound score in [-1, 1].
package sentiment

import (
	"math"
	"strings"
	"unicode"
)

const (
	bIncr = 0.293
	bDecr = -0.293

	// capsIncr is added to a sentiment word written in ALL CAPS when the
	// rest of the text is not.
	capsIncr = 0.733

	// negScalar flips and damps a negated valence.
	negScalar = -0.74

	// normAlpha approximates the maximum expected valence sum.
	normAlpha = 15.0

	exclaimIncr = 0.292
	maxExclaims = 4
	questIncr   = 0.18
	questMax    = 0.96
)

// Analyzer computes compound polarity scores. It is immutable after
// construction and safe for concurrent use.
type Analyzer struct {
	lexicon   map[string]float64
	boosters  map[string]float64
	negations map[string]struct{}
}

// NewAnalyzer returns an Analyzer with the built-in lexicon. extra entries
// are merged over it, letting callers tune domain vocabulary.
func NewAnalyzer(extra map[string]float64) *Analyzer {
	lex := make(map[string]float64, len(defaultLexicon)+len(extra))
	for w, v := range defaultLexicon {
		lex[w] = v
	}
	for w, v := range extra {
		lex[strings.ToLower(w)] = v
	}
	return &Analyzer{lexicon: lex, boosters: boosterWords, negations: negationWords}
}

// Compound returns the normalized polarity of text in [-1, 1], rounded to
// four decimals. Text with no known sentiment words scores 0.
func (a *Analyzer) Compound(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0
	}
	capDiff := mixedCase(tokens)

	lower := make([]string, len(tokens))
	for i, t := range tokens {
		lower[i] = strings.ToLower(t)
	}

	sentiments := make([]float64, len(tokens))
	for i, tok := range tokens {
		w := lower[i]
		if _, ok := a.boosters[w]; ok {
			continue
		}
		v, ok := a.lexicon[w]
		if !ok {
			continue
		}
		if capDiff && isAllCaps(tok) {
			v += math.Copysign(capsIncr, v)
		}

		for back := 1; back <= 3 && i-back >= 0; back++ {
			prev := lower[i-back]
			if _, known := a.lexicon[prev]; !known {
				s := a.boost(tokens[i-back], prev, v, capDiff)
				switch back {
				case 2:
					s *= 0.95
				case 3:
					s *= 0.9
				}
				v += s
			}
			if a.negated(prev) {
				v *= negScalar
			}
		}
		sentiments[i] = v
	}

	applyBut(lower, sentiments)

	var sum float64
	for _, s := range sentiments {
		sum += s
	}
	if sum == 0 {
		return 0
	}
	punct := punctuationEmphasis(text)
	if sum > 0 {
		sum += punct
	} else {
		sum -= punct
	}
	return round4(normalize(sum))
}

// boost returns the scalar a booster word adds to valence.
func (a *Analyzer) boost(tok, lower string, valence float64, capDiff bool) float64 {
	scalar, ok := a.boosters[lower]
	if !ok {
		return 0
	}
	if valence < 0 {
		scalar = -scalar
	}
	if capDiff && isAllCaps(tok) {
		scalar += math.Copysign(capsIncr, valence)
	}
	return scalar
}

func (a *Analyzer) negated(w string) bool {
	if _, ok := a.negations[strings.ReplaceAll(w, "'", "")]; ok {
		return true
	}
	return strings.Contains(w, "n't")
}

// applyBut halves sentiment before "but" and amplifies it after.
func applyBut(lower []string, sentiments []float64) {
	idx := -1
	for i, w := range lower {
		if w == "but" {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	for i := range sentiments {
		switch {
		case i < idx:
			sentiments[i] *= 0.5
		case i > idx:
			sentiments[i] *= 1.5
		}
	}
}

func punctuationEmphasis(text string) float64 {
	ep := strings.Count(text, "!")
	if ep > maxExclaims {
		ep = maxExclaims
	}
	emph := float64(ep) * exclaimIncr

	if qm := strings.Count(text, "?"); qm > 1 {
		if qm <= 3 {
			emph += float64(qm) * questIncr
		} else {
			emph += questMax
		}
	}
	return emph
}

func normalize(s float64) float64 {
	n := s / math.Sqrt(s*s+normAlpha)
	return math.Max(-1, math.Min(1, n))
}

func round4(f float64) float64 {
	return math.Round(f*1e4) / 1e4
}

// apostrophes maps typographic apostrophes, common in feed titles, to ASCII
// so contractions such as "aren’t" match the negation rules.
var apostrophes = strings.NewReplacer("\u2019", "'", "\u2018", "'", "\u02bc", "'")

// tokenize splits on whitespace and strips surrounding punctuation.
// Single-character tokens are dropped.
func tokenize(text string) []string {
	fields := strings.Fields(apostrophes.Replace(text))
	out := fields[:0]
	for _, f := range fields {
		t := strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if len([]rune(t)) > 1 {
			out = append(out, t)
		}
	}
	return out
}

func isAllCaps(tok string) bool {
	hasLetter := false
	for _, r := range tok {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// mixedCase reports whether some but not all tokens are ALL CAPS.
func mixedCase(tokens []string) bool {
	caps := 0
	for _, t := range tokens {
		if isAllCaps(t) {
			caps++
		}
	}
	return caps > 0 && caps < len(tokens)
}
