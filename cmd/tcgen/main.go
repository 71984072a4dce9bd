package main

import (
	"errors"
	"fmt"
	"os"

	"tcgen/internal/cli"
	"tcgen/internal/cli/commands"
	"tcgen/internal/config"
	"tcgen/internal/discovery"
	"tcgen/internal/logging"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create config with defaults, then apply .tcgen.yaml, .env and TCGEN_* variables
	cfg := config.New()
	if err := cfg.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "tcgen [--] [file...]",
		Short: "Test catalog generator",
		Long: `Scan source files for TESTCASE(function, PLUGIN | PLUGIN, "description") annotations
and write the C test catalog, per-plugin index tables and the plugin registry to stdout.

Every argument is a file path, including names starting with "-". A file named
like a subcommand (list, suites, export, view, watch, help, completion) is passed
after "--", e.g. tcgen -- list`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies and register them
	cmds := commands.NewCommands(cfg, logger)
	cmds.Register(rootCmd, &flags, cfg)
	rootCmd.SetArgs(commands.RootArgs(rootCmd, os.Args[1:]))

	// Execute root command
	err = rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		var readErr *discovery.ReadError
		if errors.As(err, &readErr) {
			fmt.Fprintln(os.Stderr, readErr.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
