// Package catalog turns the discovered test cases into per-plugin suites.
//
// Two tags are wildcards and never become plugins themselves:
// ALL selects a test case for every plugin, LITMUS selects it for every
// plugin except LINUX.
package catalog

import (
	"sort"

	"tcgen/internal/domain"
)

const (
	// WildcardAll selects a test case for every plugin
	WildcardAll = "ALL"
	// WildcardLitmus selects a test case for every plugin but LitmusExcluded
	WildcardLitmus = "LITMUS"
	// LitmusExcluded is the one plugin LITMUS-tagged cases don't run under
	LitmusExcluded = "LINUX"
)

// Builder builds a Catalog from test cases
type Builder struct{}

// NewBuilder creates a new Builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build assigns IDs in input order and computes one suite per plugin, plugins sorted by name.
// Empty input yields an empty catalog.
func (b *Builder) Build(cases []domain.TestCase) *domain.Catalog {
	cat := &domain.Catalog{Cases: cases}

	for _, plugin := range Plugins(cases) {
		suite := domain.Suite{Plugin: plugin, Tests: []int{}}
		for id, tc := range cases {
			if Matches(tc, plugin) {
				suite.Tests = append(suite.Tests, id)
			}
		}
		cat.Suites = append(cat.Suites, suite)
	}

	return cat
}

// Plugins returns the distinct non-wildcard tags across all cases, sorted
func Plugins(cases []domain.TestCase) []string {
	seen := make(map[string]bool)
	var plugins []string
	for _, tc := range cases {
		for _, p := range tc.Plugins {
			if IsWildcard(p) || seen[p] {
				continue
			}
			seen[p] = true
			plugins = append(plugins, p)
		}
	}
	sort.Strings(plugins)
	return plugins
}

// IsWildcard reports whether tag is one of the reserved wildcard tags
func IsWildcard(tag string) bool {
	return tag == WildcardAll || tag == WildcardLitmus
}

// Matches reports whether tc belongs to plugin's suite.
// ALL wins unconditionally, LITMUS applies to every plugin except LINUX.
func Matches(tc domain.TestCase, plugin string) bool {
	return tc.HasPlugin(plugin) ||
		tc.HasPlugin(WildcardAll) ||
		(tc.HasPlugin(WildcardLitmus) && plugin != LitmusExcluded)
}
