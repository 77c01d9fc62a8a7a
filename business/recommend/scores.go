package recommend

import "sort"

type scoreEntry struct {
	productID string
	score     float64
}

// orderedScores accumulates per-product scores while preserving
// first-insertion order, so equal scores rank deterministically.
type orderedScores struct {
	index   map[string]int
	entries []scoreEntry
}

func newOrderedScores() *orderedScores {
	return &orderedScores{index: make(map[string]int)}
}

func (o *orderedScores) add(productID string, delta float64) {
	if i, ok := o.index[productID]; ok {
		o.entries[i].score += delta
		return
	}
	o.index[productID] = len(o.entries)
	o.entries = append(o.entries, scoreEntry{productID: productID, score: delta})
}

func (o *orderedScores) len() int {
	return len(o.entries)
}

func (o *orderedScores) max() float64 {
	max := 0.0
	for _, e := range o.entries {
		if e.score > max {
			max = e.score
		}
	}
	return max
}

// topN returns up to limit entries sorted by descending score; ties keep
// insertion order.
func (o *orderedScores) topN(limit int) []scoreEntry {
	sorted := make([]scoreEntry, len(o.entries))
	copy(sorted, o.entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].score > sorted[j].score
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
