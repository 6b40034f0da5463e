package helpers

import "sort"

// EntryStatistic represents a named count in a frequency table.
type EntryStatistic struct {
	Name  string
	Count int
}

// CalculateTopEntries returns the top N entries of a frequency map.
// If limit is 0 or negative, returns all entries.
func CalculateTopEntries(frequency map[string]int, limit int) []EntryStatistic {
	stats := make([]EntryStatistic, 0, len(frequency))
	for name, count := range frequency {
		stats = append(stats, EntryStatistic{Name: name, Count: count})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count == stats[j].Count {
			return stats[i].Name < stats[j].Name
		}
		return stats[i].Count > stats[j].Count
	})

	if limit > 0 && len(stats) > limit {
		return stats[:limit]
	}
	return stats
}

// CalculateHandledRate calculates the handled percentage of dispatches.
func CalculateHandledRate(handledCount, totalCount int) float64 {
	if totalCount == 0 {
		return 0.0
	}
	return float64(handledCount) / float64(totalCount) * 100.0
}
