package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tcgen/internal/config"
	"tcgen/internal/discovery"
	"tcgen/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	loader    *catalogLoader
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	loader *catalogLoader,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		loader:    loader,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	_, cat, err := lc.loader.load(cmd, args)
	if err != nil {
		return err
	}

	// Filter test cases
	cases := lc.filter.FilterByName(cat.Cases, lc.config.Flags.NameFilter)

	if len(cases) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No test cases found")
		return nil
	}

	lc.formatter.PrintTestList(cmd.OutOrStdout(), cases, lc.config.Flags.ShowPlugins)
	return nil
}
