package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tcgen/internal/config"
	"tcgen/internal/storage"
	"tcgen/internal/ui"
)

// ExportCommand handles the export command
type ExportCommand struct {
	config    *config.Config
	loader    *catalogLoader
	formatter *ui.Formatter
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(cfg *config.Config, loader *catalogLoader, formatter *ui.Formatter) *ExportCommand {
	return &ExportCommand{
		config:    cfg,
		loader:    loader,
		formatter: formatter,
	}
}

// Execute runs the command
func (ec *ExportCommand) Execute(cmd *cobra.Command, args []string) error {
	// Storage depends on --format, so it is picked after flag parsing
	st, err := storage.New(ec.config)
	if err != nil {
		return err
	}

	files, cat, err := ec.loader.load(cmd, args)
	if err != nil {
		return err
	}

	if err := st.Save(cat, files); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	ec.formatter.PrintSaved(cmd.OutOrStdout(), ec.config.GetOutputPath())
	ec.formatter.PrintSummary(cmd.OutOrStdout(), cat)
	return nil
}
