package sentiment

import "github.com/seenimoa/tickerpulse/pkg/models"

// Classification thresholds on the compound score.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05

	strongThreshold = 0.25
)

// Classify labels a compound score: >= 0.05 positive, <= -0.05 negative,
// neutral otherwise.
func Classify(compound float64) models.SentimentLabel {
	switch {
	case compound >= PositiveThreshold:
		return models.LabelPositive
	case compound <= NegativeThreshold:
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}

// Tag is the short strength marker used in text reports:
// "++", "+", "0", "-" or "--".
func Tag(compound float64) string {
	switch {
	case compound >= strongThreshold:
		return "++"
	case compound >= PositiveThreshold:
		return "+"
	case compound <= -strongThreshold:
		return "--"
	case compound <= NegativeThreshold:
		return "-"
	default:
		return "0"
	}
}
