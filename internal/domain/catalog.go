package domain

// Catalog is the ordered list of discovered test cases plus one suite per plugin.
// A test case's ID is its index in Cases.
type Catalog struct {
	Cases  []TestCase
	Suites []Suite
}

// Plugins returns the plugin universe in suite order
func (c *Catalog) Plugins() []string {
	plugins := make([]string, 0, len(c.Suites))
	for _, s := range c.Suites {
		plugins = append(plugins, s.Plugin)
	}
	return plugins
}

// Suite returns the suite for a plugin
func (c *Catalog) Suite(plugin string) (Suite, bool) {
	for _, s := range c.Suites {
		if s.Plugin == plugin {
			return s, true
		}
	}
	return Suite{}, false
}

// Functions returns each distinct function name once, in catalog order
func (c *Catalog) Functions() []string {
	seen := make(map[string]bool, len(c.Cases))
	var functions []string
	for _, tc := range c.Cases {
		if seen[tc.Function] {
			continue
		}
		seen[tc.Function] = true
		functions = append(functions, tc.Function)
	}
	return functions
}

// SuiteEntry is a registry row as written to catalog snapshots
type SuiteEntry struct {
	Plugin      string `json:"plugin" msgpack:"plugin"`
	DisplayName string `json:"display_name" msgpack:"display_name"`
	Tests       []int  `json:"tests" msgpack:"tests"`
	Count       int    `json:"count" msgpack:"count"`
}

// CatalogMeta contains metadata about a catalog snapshot
type CatalogMeta struct {
	TotalCases   int      `json:"total_cases" msgpack:"total_cases"`
	TotalPlugins int      `json:"total_plugins" msgpack:"total_plugins"`
	Files        []string `json:"files" msgpack:"files"`
	Timestamp    string   `json:"timestamp" msgpack:"timestamp"`
}

// CatalogOutput is the complete snapshot structure written by the storage layer
type CatalogOutput struct {
	Meta     CatalogMeta  `json:"meta" msgpack:"meta"`
	Cases    []TestCase   `json:"cases" msgpack:"cases"`
	Registry []SuiteEntry `json:"registry" msgpack:"registry"`
}

// Catalog rebuilds the in-memory catalog from a snapshot
func (o *CatalogOutput) Catalog() *Catalog {
	cat := &Catalog{Cases: o.Cases}
	for _, e := range o.Registry {
		cat.Suites = append(cat.Suites, Suite{Plugin: e.Plugin, Tests: e.Tests})
	}
	return cat
}
