package news

import (
	"sort"

	"github.com/seenimoa/tickerpulse/pkg/models"
)

type dedupeKey struct {
	title string
	link  string
}

// DedupeAndSort keeps the first occurrence of each (title, link) pair and
// orders the survivors newest first. Equal timestamps keep input order.
// The input slice is not modified.
func DedupeAndSort(items []models.NewsItem) []models.NewsItem {
	seen := make(map[dedupeKey]struct{}, len(items))
	out := make([]models.NewsItem, 0, len(items))
	for _, it := range items {
		k := dedupeKey{it.Title, it.Link}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, it)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt > out[j].PublishedAt
	})
	return out
}

// Truncate returns at most n items; n below 1 is treated as 1.
func Truncate(items []models.NewsItem, n int) []models.NewsItem {
	if n < 1 {
		n = 1
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}
