package slices_test

import (
	"testing"

	"github.com/goto/approvalflow/pkg/slices"
	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	byCategory := map[string]int{"IT": 3, "Finance": 2, "HR": 1}
	assert.Equal(t, []string{"Finance", "HR", "IT"}, slices.SortedKeys(byCategory))

	ids := map[int]struct{}{12: {}, 3: {}, 7: {}}
	assert.Equal(t, []int{3, 7, 12}, slices.SortedKeys(ids))

	assert.Empty(t, slices.SortedKeys(map[string]int{}))
}

func TestFilterEmpty(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, slices.FilterEmpty([]string{"", "a", "", "b"}))
	assert.Equal(t, []int{1, 2}, slices.FilterEmpty([]int{0, 1, 0, 2}))
	assert.Equal(t, []string{}, slices.FilterEmpty[string](nil))
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, slices.Unique([]string{"b", "a", "b", "c", "a"}))
	assert.Equal(t, []int{}, slices.Unique([]int{}))
}

func TestStandardize(t *testing.T) {
	testCases := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil",
			input:    nil,
			expected: []string{},
		},
		{
			name:     "mixed",
			input:    []string{"urgent", "", "low", "urgent", "high"},
			expected: []string{"high", "low", "urgent"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, slices.Standardize(tc.input))
		})
	}
}
