package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_CanLoadMore(t *testing.T) {
	tests := []struct {
		name     string
		snapshot Snapshot
		expected bool
	}{
		{name: "idle with query", snapshot: Snapshot{Query: "redux", Active: true}, expected: true},
		{name: "idle with empty query", snapshot: Snapshot{Query: "", Active: true, Cached: true}, expected: true},
		{name: "loading", snapshot: Snapshot{Query: "redux", Active: true, IsLoading: true}, expected: false},
		{name: "nothing submitted", snapshot: Snapshot{}, expected: false},
		{
			name:     "after error",
			snapshot: Snapshot{Query: "redux", Active: true, Error: &ErrorInfo{Message: "boom"}},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.snapshot.CanLoadMore())
		})
	}
}
