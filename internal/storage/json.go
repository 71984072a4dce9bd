package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"tcgen/internal/config"
	"tcgen/internal/domain"
)

// JSONStorage stores snapshots as indented JSON at the configured output path
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output path as JSON
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// Save writes the catalog snapshot to the configured output file.
func (s *JSONStorage) Save(cat *domain.Catalog, files []string) error {
	return s.SaveOutput(NewOutput(cat, files))
}

// Load reads the snapshot from the configured output file.
func (s *JSONStorage) Load() (*domain.CatalogOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var output domain.CatalogOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.CatalogOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := WriteFileAtomic(s.cfg.GetOutputPath(), data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
