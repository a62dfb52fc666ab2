package explain

import (
	"sort"

	"github.com/credlens/credlens/internal/model"
)

// NoExplanationMessage is reported when there are no word importances to rank,
// e.g. the upstream explainer returned nothing and no indicators matched.
const NoExplanationMessage = "no explanation available"

// Renderer ranks signed word importances into a presentation-ready structure
type Renderer struct {
	topN int
}

// NewRenderer creates a renderer keeping at most topN entries per direction
func NewRenderer(topN int) *Renderer {
	return &Renderer{topN: topN}
}

// Rank splits importances by sign and orders each list by magnitude:
// topPositive descending by weight, topNegative ascending (most fake-leaning
// first), each truncated to N. Zero-weight entries are excluded from both top
// lists but kept in All. Ties keep input order, so identical inputs always
// render identically.
//
// An empty or nil input degrades to Available=false rather than an error.
func (r *Renderer) Rank(importances []model.WordImportance) model.Explanation {
	if len(importances) == 0 {
		return model.Explanation{
			All:       []model.WordImportance{},
			Available: false,
			Message:   NoExplanationMessage,
		}
	}

	all := make([]model.WordImportance, len(importances))
	copy(all, importances)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Weight > all[j].Weight
	})

	var positive, negative []model.WordImportance
	for _, imp := range importances {
		switch {
		case imp.Weight > 0:
			positive = append(positive, imp)
		case imp.Weight < 0:
			negative = append(negative, imp)
		}
	}

	sort.SliceStable(positive, func(i, j int) bool {
		return positive[i].Weight > positive[j].Weight
	})
	sort.SliceStable(negative, func(i, j int) bool {
		return negative[i].Weight < negative[j].Weight
	})

	return model.Explanation{
		TopPositive: truncate(positive, r.topN),
		TopNegative: truncate(negative, r.topN),
		All:         all,
		Available:   true,
	}
}

func truncate(list []model.WordImportance, n int) []model.WordImportance {
	if len(list) > n {
		return list[:n]
	}
	return list
}
