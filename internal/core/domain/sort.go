package domain

import (
	"fmt"
	"sort"
	"strings"
)

// SortKey selects the presentation order of hits.
type SortKey string

// Available sort keys.
const (
	// SortNone keeps arrival order.
	SortNone SortKey = "none"

	// SortTitle orders by title, ascending.
	SortTitle SortKey = "title"

	// SortAuthor orders by author, ascending.
	SortAuthor SortKey = "author"

	// SortComments orders by comment count, highest first.
	SortComments SortKey = "comments"

	// SortPoints orders by points, highest first.
	SortPoints SortKey = "points"
)

// IsValid returns true if the sort key is recognised.
func (k SortKey) IsValid() bool {
	switch k {
	case SortNone, SortTitle, SortAuthor, SortComments, SortPoints:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k SortKey) String() string {
	return string(k)
}

// Description returns a human-readable label for the sort key.
func (k SortKey) Description() string {
	switch k {
	case SortNone:
		return "Relevance"
	case SortTitle:
		return "Title"
	case SortAuthor:
		return "Author"
	case SortComments:
		return "Comments"
	case SortPoints:
		return "Points"
	default:
		return "Unknown"
	}
}

// AllSortKeys returns every sort key in display order.
func AllSortKeys() []SortKey {
	return []SortKey{SortNone, SortTitle, SortAuthor, SortComments, SortPoints}
}

// ParseSortKey converts a case-insensitive name into a SortKey.
// An empty name maps to SortNone.
func ParseSortKey(name string) (SortKey, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return SortNone, nil
	}
	key := SortKey(name)
	if !key.IsValid() {
		return SortNone, fmt.Errorf("%w: unknown sort key %q", ErrInvalidInput, name)
	}
	return key, nil
}

// SortHits returns a new slice with hits ordered by key.
//
// Text fields sort ascending and numeric ranking fields sort descending.
// The sort is stable, so equal elements keep their arrival order. The input
// slice is never modified.
func SortHits(hits []Item, key SortKey) []Item {
	sorted := make([]Item, len(hits))
	copy(sorted, hits)

	var less func(a, b Item) bool
	switch key {
	case SortTitle:
		less = func(a, b Item) bool { return a.Title < b.Title }
	case SortAuthor:
		less = func(a, b Item) bool { return a.Author < b.Author }
	case SortComments:
		less = func(a, b Item) bool { return a.NumComments > b.NumComments }
	case SortPoints:
		less = func(a, b Item) bool { return a.Points > b.Points }
	case SortNone:
		return sorted
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// SortState is the display layer's current ordering choice.
// The zero value is SortNone, forward order.
type SortState struct {
	// Key is the active sort key.
	Key SortKey `json:"key"`

	// Reversed inverts the order produced by Key.
	Reversed bool `json:"reversed"`
}

// Select returns the state after the user picks key.
// Picking the active key toggles Reversed; picking a different key resets
// Reversed to false.
func (s SortState) Select(key SortKey) SortState {
	if key == s.effectiveKey() {
		return SortState{Key: key, Reversed: !s.Reversed}
	}
	return SortState{Key: key, Reversed: false}
}

// Apply returns hits ordered by Key, then reversed if Reversed is set.
func (s SortState) Apply(hits []Item) []Item {
	sorted := SortHits(hits, s.effectiveKey())
	if s.Reversed {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}
	return sorted
}

// effectiveKey treats the empty key as SortNone.
func (s SortState) effectiveKey() SortKey {
	if s.Key == "" {
		return SortNone
	}
	return s.Key
}
