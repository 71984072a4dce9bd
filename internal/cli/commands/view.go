package commands

import (
	"github.com/spf13/cobra"

	"tcgen/internal/config"
	"tcgen/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config *config.Config
	loader *catalogLoader
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, loader *catalogLoader) *ViewCommand {
	return &ViewCommand{
		config: cfg,
		loader: loader,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	cat, err := vc.loader.catalog(cmd, args)
	if err != nil {
		return err
	}

	var viewer ui.Viewer = ui.NewCatalogBrowser(vc.config, cmd.OutOrStdout())
	return viewer.View(cat)
}
