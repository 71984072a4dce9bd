package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/bndr/gotabulate"
	"github.com/fatih/color"

	"tcgen/internal/config"
	"tcgen/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// fileGroup holds the cases of one source file in catalog order
type fileGroup struct {
	path  string
	cases []domain.TestCase
}

func groupByFile(cases []domain.TestCase) []fileGroup {
	index := make(map[string]int)
	var groups []fileGroup
	for _, tc := range cases {
		i, ok := index[tc.FilePath]
		if !ok {
			i = len(groups)
			index[tc.FilePath] = i
			groups = append(groups, fileGroup{path: tc.FilePath})
		}
		groups[i].cases = append(groups[i].cases, tc)
	}
	return groups
}

// PrintTestList prints test cases as a tree grouped by source file, optionally with their plugin tags.
func (f *Formatter) PrintTestList(w io.Writer, cases []domain.TestCase, showPlugins bool) {
	groups := groupByFile(cases)

	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)
	gray := color.New(color.FgHiBlack)

	color.New(color.FgGreen).Fprintf(w, "Found %d test case(s) in %d file(s):\n\n", len(cases), len(groups))

	for i, group := range groups {
		isLastFile := i == len(groups)-1
		if isLastFile {
			cyan.Fprintf(w, "└── %s\n", group.path)
		} else {
			cyan.Fprintf(w, "├── %s\n", group.path)
		}

		for j, tc := range group.cases {
			isLastCase := j == len(group.cases)-1

			var prefix string
			if isLastFile {
				if isLastCase {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastCase {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}

			line := yellow.Sprint(tc.Function)
			if showPlugins {
				line += " " + gray.Sprintf("[%s]", strings.Join(tc.Plugins, " | "))
			}
			if tc.Description != "" {
				line += " " + tc.Description
			}
			fmt.Fprintf(w, "%s%s\n", prefix, line)
		}
	}
}

// PrintSuites prints one table row per plugin followed by the catalog totals.
func (f *Formatter) PrintSuites(w io.Writer, cat *domain.Catalog) {
	if len(cat.Suites) == 0 {
		color.New(color.FgYellow).Fprintf(w, "No plugins found (%d test case(s))\n", len(cat.Cases))
		return
	}

	rows := make([][]any, 0, len(cat.Suites))
	for _, s := range cat.Suites {
		rows = append(rows, []any{s.DisplayName(), s.Plugin + "_TESTS", s.Count()})
	}

	t := gotabulate.Create(rows)
	t.SetHeaders([]string{"Plugin", "Index Table", "Tests"})
	t.SetAlign("left")
	fmt.Fprint(w, t.Render("grid"))

	f.PrintSummary(w, cat)
}

// PrintSummary prints the catalog size and plugin count on one line
func (f *Formatter) PrintSummary(w io.Writer, cat *domain.Catalog) {
	color.New(color.FgGreen).Fprintf(w, "✓ %d test case(s), %d plugin(s)\n", len(cat.Cases), len(cat.Suites))
}

// PrintSaved reports where a file was written
func (f *Formatter) PrintSaved(w io.Writer, path string) {
	color.New(color.FgCyan).Fprintf(w, "Saved %s\n", path)
}
