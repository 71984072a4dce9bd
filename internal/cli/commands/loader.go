package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tcgen/internal/catalog"
	"tcgen/internal/config"
	"tcgen/internal/discovery"
	"tcgen/internal/domain"
	"tcgen/internal/storage"
	"tcgen/internal/ui"
)

// catalogLoader runs expand, scan and build for the subcommands
type catalogLoader struct {
	config  *config.Config
	scanner *discovery.Scanner
	parser  *discovery.Parser
	builder *catalog.Builder
}

func newCatalogLoader(cfg *config.Config, scanner *discovery.Scanner, parser *discovery.Parser, builder *catalog.Builder) *catalogLoader {
	return &catalogLoader{
		config:  cfg,
		scanner: scanner,
		parser:  parser,
		builder: builder,
	}
}

// load returns the scanned files and the catalog built from them.
// No paths means the current directory.
func (l *catalogLoader) load(cmd *cobra.Command, paths []string) ([]string, *domain.Catalog, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := l.scanner.Expand(paths)
	if err != nil {
		return nil, nil, err
	}

	var progress discovery.Progress
	if l.config.Progress && len(files) > 0 {
		progress = ui.NewProgressBar(len(files), cmd.ErrOrStderr())
	}

	cases, err := l.parser.FindAll(files, progress)
	if err != nil {
		return nil, nil, err
	}
	return files, l.builder.Build(cases), nil
}

// catalog loads the --snapshot file when one is given, otherwise scans paths
func (l *catalogLoader) catalog(cmd *cobra.Command, paths []string) (*domain.Catalog, error) {
	snapshot := l.config.Flags.Snapshot
	if snapshot == "" {
		_, cat, err := l.load(cmd, paths)
		return cat, err
	}
	if len(paths) > 0 {
		return nil, errors.New("--snapshot cannot be combined with paths")
	}

	store, err := storage.Open(l.config, snapshot)
	if err != nil {
		return nil, err
	}
	output, err := store.Load()
	if err != nil {
		return nil, err
	}
	return output.Catalog(), nil
}
