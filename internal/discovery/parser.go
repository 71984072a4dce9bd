package discovery

import (
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"tcgen/internal/domain"
)

// annotationPattern matches TESTCASE(<function>, <plugin> | <plugin>..., "<description>").
// Whitespace, newlines included, is allowed around every delimiter.
var annotationPattern = regexp.MustCompile(
	`TESTCASE\(` +
		`\s*([A-Za-z_0-9]+)\s*,` + // function name
		`\s*([A-Za-z_0-9-]+(?:\s*\|\s*[A-Za-z_0-9-]+)*)\s*,` + // plugins
		`\s*"([^"]*)"\s*` + // description
		`\)`)

// Progress is notified after every scanned file
type Progress interface {
	Update(files, cases int)
	Finish()
}

// Parser extracts TESTCASE annotations from source files
type Parser struct {
	logger *zap.Logger
}

// NewParser creates a new Parser
func NewParser(logger *zap.Logger) *Parser {
	return &Parser{logger: logger}
}

// FindTestCases reads a file and returns its annotations in file order
func (p *Parser) FindTestCases(filePath string) ([]domain.TestCase, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, &ReadError{Path: filePath, Err: err}
	}

	cases := ParseSource(filePath, string(content))
	p.logger.Debug("Scanned file", zap.String("path", filePath), zap.Int("cases", len(cases)))
	return cases, nil
}

// FindAll scans files in order and concatenates their test cases.
// The first unreadable file stops the scan. progress may be nil.
func (p *Parser) FindAll(filePaths []string, progress Progress) ([]domain.TestCase, error) {
	var all []domain.TestCase
	for i, path := range filePaths {
		cases, err := p.FindTestCases(path)
		if err != nil {
			return nil, err
		}
		all = append(all, cases...)

		if progress != nil {
			progress.Update(i+1, len(all))
		}
	}
	if progress != nil {
		progress.Finish()
	}
	return all, nil
}

// ParseSource extracts every non-overlapping annotation from content, left to right.
// Text that doesn't fit the grammar is skipped silently.
func ParseSource(filePath, content string) []domain.TestCase {
	matches := annotationPattern.FindAllStringSubmatch(content, -1)

	cases := make([]domain.TestCase, 0, len(matches))
	for _, match := range matches {
		tags := strings.Split(match[2], "|")
		plugins := make([]string, 0, len(tags))
		for _, tag := range tags {
			plugins = append(plugins, strings.TrimSpace(tag))
		}

		cases = append(cases, domain.TestCase{
			Function:    match[1],
			Plugins:     plugins,
			Description: match[3],
			FilePath:    filePath,
		})
	}
	return cases
}
