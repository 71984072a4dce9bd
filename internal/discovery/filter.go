package discovery

import (
	"path/filepath"
	"strings"

	"tcgen/internal/domain"
)

// Filter filters test cases by function name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters test cases by function name using wildcard matching.
// Supports patterns like "lock_*" or "*nesting*"; a pattern without wildcards is a substring match.
func (f *Filter) FilterByName(cases []domain.TestCase, pattern string) []domain.TestCase {
	if pattern == "" {
		return cases
	}

	var filtered []domain.TestCase
	for _, tc := range cases {
		if matchName(tc.Function, pattern) {
			filtered = append(filtered, tc)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	// filepath.Match supports * and ? wildcards
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.Contains(pattern, "*") {
		return !strings.Contains(pattern, "?") && strings.Contains(name, pattern)
	}

	// Fall back to an unordered parts check for patterns like "*fmlp*"
	hasPart := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		if !strings.Contains(name, part) {
			return false
		}
		hasPart = true
	}
	return hasPart
}
