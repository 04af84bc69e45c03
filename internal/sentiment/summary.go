package sentiment

import (
	"sort"

	"github.com/seenimoa/tickerpulse/pkg/models"
)

// Summarize aggregates rows into counts, mean and median. Mean and median
// are nil when there are no rows.
func Summarize(rows []models.ScoredRow) models.Summary {
	s := models.Summary{Count: len(rows)}
	if len(rows) == 0 {
		return s
	}

	comps := make([]float64, len(rows))
	var total float64
	for i, r := range rows {
		comps[i] = r.Compound
		total += r.Compound
		switch r.Label {
		case models.LabelPositive:
			s.Pos++
		case models.LabelNegative:
			s.Neg++
		default:
			s.Neu++
		}
	}

	avg := total / float64(len(rows))
	med := median(comps)
	s.AvgCompound = &avg
	s.MedianCompound = &med
	return s
}

// median sorts vals in place.
func median(vals []float64) float64 {
	sort.Float64s(vals)
	n := len(vals)
	if n%2 == 1 {
		return vals[n/2]
	}
	return (vals[n/2-1] + vals[n/2]) / 2
}
