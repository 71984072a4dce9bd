package domain

import "strings"

// TestCase represents a single TESTCASE annotation found in a source file
type TestCase struct {
	Function    string   `json:"function" msgpack:"function"`       // Test function name, emitted as test_<Function>
	Plugins     []string `json:"plugins" msgpack:"plugins"`         // Plugin tags in annotation order, duplicates kept
	Description string   `json:"description" msgpack:"description"` // Quoted description text
	FilePath    string   `json:"file_path" msgpack:"file_path"`     // Source file the annotation was found in
}

// HasPlugin reports whether the test case carries the given tag
func (tc TestCase) HasPlugin(tag string) bool {
	for _, p := range tc.Plugins {
		if p == tag {
			return true
		}
	}
	return false
}

// Suite is the set of catalog IDs selected for one plugin
type Suite struct {
	Plugin string `json:"plugin" msgpack:"plugin"`
	Tests  []int  `json:"tests" msgpack:"tests"`
}

// DisplayName returns the plugin name as the test harness shows it
func (s Suite) DisplayName() string {
	return DisplayName(s.Plugin)
}

// Count returns the number of test cases in the suite
func (s Suite) Count() int {
	return len(s.Tests)
}

// DisplayName converts a plugin tag to its registry name (underscores become hyphens)
func DisplayName(plugin string) string {
	return strings.ReplaceAll(plugin, "_", "-")
}
