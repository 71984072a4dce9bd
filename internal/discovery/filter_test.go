package discovery

import (
	"testing"

	"tcgen/internal/domain"
)

func casesNamed(names ...string) []domain.TestCase {
	cases := make([]domain.TestCase, 0, len(names))
	for _, n := range names {
		cases = append(cases, domain.TestCase{Function: n})
	}
	return cases
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()
	all := casesNamed("lock_fmlp", "lock_srp", "lock_fmlp_nesting", "invalid_od", "not_lock_pcp_be")

	tests := []struct {
		name     string
		pattern  string
		expected int // Expected number of matches
	}{
		{name: "empty pattern returns all", pattern: "", expected: 5},
		{name: "prefix wildcard", pattern: "lock_*", expected: 3},
		{name: "suffix wildcard", pattern: "*_be", expected: 1},
		{name: "substring wildcard", pattern: "*fmlp*", expected: 2},
		{name: "multiple wildcards", pattern: "*lock*be", expected: 1},
		{name: "simple contains match", pattern: "srp", expected: 1},
		{name: "no matches", pattern: "*dpcp*", expected: 0},
		{name: "only wildcards", pattern: "**", expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(all, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty case list", func(t *testing.T) {
		result := filter.FilterByName(nil, "lock_*")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("keeps catalog order", func(t *testing.T) {
		result := filter.FilterByName(casesNamed("b_lock", "a_lock", "c_lock"), "*lock")
		if len(result) != 3 || result[0].Function != "b_lock" || result[2].Function != "c_lock" {
			t.Errorf("unexpected order: %v", result)
		}
	})
}
