package commands

import (
	"tcgen/internal/catalog"
	"tcgen/internal/cli"
	"tcgen/internal/config"
	"tcgen/internal/discovery"
	"tcgen/internal/emitter"
	"tcgen/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Commands holds all CLI commands
type Commands struct {
	Generate *GenerateCommand
	List     *ListCommand
	Suites   *SuitesCommand
	Export   *ExportCommand
	View     *ViewCommand
	Watch    *WatchCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, logger *zap.Logger) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg)
	parser := discovery.NewParser(logger)
	filter := discovery.NewFilter()
	builder := catalog.NewBuilder()
	cEmitter := emitter.NewCEmitter(cfg.Header)
	formatter := ui.NewFormatter(cfg)
	loader := newCatalogLoader(cfg, scanner, parser, builder)

	return &Commands{
		Generate: NewGenerateCommand(parser, builder, cEmitter, logger),
		List:     NewListCommand(cfg, loader, filter, formatter),
		Suites:   NewSuitesCommand(loader, formatter),
		Export:   NewExportCommand(cfg, loader, formatter),
		View:     NewViewCommand(cfg, loader),
		Watch:    NewWatchCommand(cfg, loader, cEmitter, logger),
	}
}

// Register wires the commands into rootCmd. The root command itself generates the catalog.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.RunE = c.Generate.Execute

	// Update config with flags after parsing
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		return nil
	}

	// List command
	listCmd := &cobra.Command{
		Use:     "list [path...]",
		Short:   "List discovered test cases",
		Long:    "Scan files and directories and list every TESTCASE annotation grouped by file",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test cases by function name (supports wildcards, e.g., 'lock_*' or '*nesting*')")
	listCmd.Flags().BoolVarP(&flags.ShowPlugins, "plugins", "p", false, "Show the plugin tags of each test case")
	rootCmd.AddCommand(listCmd)

	// Suites command
	suitesCmd := &cobra.Command{
		Use:     "suites [path...]",
		Short:   "Show the plugin registry",
		Long:    "Build the catalog, or load one saved by export, and print one row per plugin with the number of selected test cases",
		RunE:    c.Suites.Execute,
		PreRunE: applyFlags,
	}
	suitesCmd.Flags().StringVar(&flags.Snapshot, "snapshot", "", "Read the catalog from a snapshot file instead of scanning paths")
	rootCmd.AddCommand(suitesCmd)

	// Export command
	exportCmd := &cobra.Command{
		Use:     "export [path...]",
		Short:   "Save a catalog snapshot",
		Long:    "Build the catalog and save cases and plugin indices as JSON or msgpack",
		RunE:    c.Export.Execute,
		PreRunE: applyFlags,
	}
	exportCmd.Flags().StringVar(&flags.Format, "format", "", "Snapshot format: json or msgpack (default from config)")
	exportCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Snapshot file path (default ./catalog.<format>)")
	rootCmd.AddCommand(exportCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:     "view [path...]",
		Short:   "Browse plugin suites interactively",
		Long:    "Display the catalog in an interactive viewer, one plugin at a time",
		RunE:    c.View.Execute,
		PreRunE: applyFlags,
	}
	viewCmd.Flags().StringVar(&flags.Snapshot, "snapshot", "", "Read the catalog from a snapshot file instead of scanning paths")
	rootCmd.AddCommand(viewCmd)

	// Watch command
	watchCmd := &cobra.Command{
		Use:     "watch [path...]",
		Short:   "Regenerate the catalog on change",
		Long:    "Write the generated catalog to a file and rewrite it whenever a watched source file changes",
		RunE:    c.Watch.Execute,
		PreRunE: applyFlags,
	}
	watchCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "File to write the generated catalog to")
	_ = watchCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(watchCmd)
}
