package commands

import (
	"github.com/spf13/cobra"

	"tcgen/internal/ui"
)

// SuitesCommand handles the suites command
type SuitesCommand struct {
	loader    *catalogLoader
	formatter *ui.Formatter
}

// NewSuitesCommand creates a new SuitesCommand
func NewSuitesCommand(loader *catalogLoader, formatter *ui.Formatter) *SuitesCommand {
	return &SuitesCommand{
		loader:    loader,
		formatter: formatter,
	}
}

// Execute runs the command
func (sc *SuitesCommand) Execute(cmd *cobra.Command, args []string) error {
	cat, err := sc.loader.catalog(cmd, args)
	if err != nil {
		return err
	}

	sc.formatter.PrintSuites(cmd.OutOrStdout(), cat)
	return nil
}
