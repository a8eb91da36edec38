package services

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/custodia-labs/hnsearch/internal/core/domain"
)

// titleSource adapts a hit slice to fuzzy.Source.
type titleSource []domain.Item

func (s titleSource) String(i int) string { return strings.ToLower(s[i].Title) }
func (s titleSource) Len() int            { return len(s) }

// FilterHits returns the hits whose title contains pattern, ignoring case,
// in their original order. An empty pattern returns hits unchanged.
//
// The fuzzy matcher narrows the candidates; a subsequence match alone
// ("rdx" for "redux") is not enough to keep a hit.
func FilterHits(hits []domain.Item, pattern string) []domain.Item {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if pattern == "" {
		return hits
	}

	matches := fuzzy.FindFrom(pattern, titleSource(hits))

	indexes := make([]int, 0, len(matches))
	for _, m := range matches {
		if strings.Contains(m.Str, pattern) {
			indexes = append(indexes, m.Index)
		}
	}
	sort.Ints(indexes)

	filtered := make([]domain.Item, 0, len(indexes))
	for _, i := range indexes {
		filtered = append(filtered, hits[i])
	}
	return filtered
}
