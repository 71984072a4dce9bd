package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"tcgen/internal/config"
	"tcgen/internal/domain"
)

// Storage persists and loads catalog snapshots
type Storage interface {
	Save(cat *domain.Catalog, files []string) error
	Load() (*domain.CatalogOutput, error)
	// SaveOutput writes a snapshot as is (e.g. one loaded earlier).
	SaveOutput(output *domain.CatalogOutput) error
}

// New returns the Storage for the configured snapshot format
func New(cfg *config.Config) (Storage, error) {
	switch format := cfg.GetFormat(); format {
	case config.FormatJSON:
		return NewJSONStorage(cfg), nil
	case config.FormatMsgpack:
		return NewMsgpackStorage(cfg), nil
	default:
		return nil, fmt.Errorf("unknown snapshot format %q", format)
	}
}

// Open returns the Storage for an existing snapshot file.
// A .json or .msgpack extension picks the format; anything else uses the configured one.
func Open(cfg *config.Config, path string) (Storage, error) {
	snapshot := *cfg
	snapshot.Flags.Output = path
	switch ext := strings.TrimPrefix(filepath.Ext(path), "."); ext {
	case config.FormatJSON, config.FormatMsgpack:
		snapshot.Flags.Format = ext
	}
	return New(&snapshot)
}

// NewOutput builds the snapshot structure for a catalog
func NewOutput(cat *domain.Catalog, files []string) *domain.CatalogOutput {
	registry := make([]domain.SuiteEntry, 0, len(cat.Suites))
	for _, s := range cat.Suites {
		registry = append(registry, domain.SuiteEntry{
			Plugin:      s.Plugin,
			DisplayName: s.DisplayName(),
			Tests:       s.Tests,
			Count:       s.Count(),
		})
	}

	cases := cat.Cases
	if cases == nil {
		cases = []domain.TestCase{}
	}

	return &domain.CatalogOutput{
		Meta: domain.CatalogMeta{
			TotalCases:   len(cat.Cases),
			TotalPlugins: len(cat.Suites),
			Files:        files,
			Timestamp:    time.Now().Format(time.RFC3339),
		},
		Cases:    cases,
		Registry: registry,
	}
}
