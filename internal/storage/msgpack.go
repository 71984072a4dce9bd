package storage

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"tcgen/internal/config"
	"tcgen/internal/domain"
)

// MsgpackStorage stores snapshots in MessagePack encoding
type MsgpackStorage struct {
	cfg *config.Config
}

// NewMsgpackStorage returns a Storage that reads/writes the config's output path as msgpack
func NewMsgpackStorage(cfg *config.Config) *MsgpackStorage {
	return &MsgpackStorage{cfg: cfg}
}

func (s *MsgpackStorage) Save(cat *domain.Catalog, files []string) error {
	return s.SaveOutput(NewOutput(cat, files))
}

func (s *MsgpackStorage) Load() (*domain.CatalogOutput, error) {
	data, err := os.ReadFile(s.cfg.GetOutputPath())
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var output domain.CatalogOutput
	if err := msgpack.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &output, nil
}

func (s *MsgpackStorage) SaveOutput(output *domain.CatalogOutput) error {
	data, err := msgpack.Marshal(output)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := WriteFileAtomic(s.cfg.GetOutputPath(), data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
