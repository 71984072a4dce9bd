package commands

import (
	"bytes"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tcgen/internal/config"
	"tcgen/internal/emitter"
	"tcgen/internal/storage"
	"tcgen/internal/watch"
)

// WatchCommand handles the watch command
type WatchCommand struct {
	config  *config.Config
	loader  *catalogLoader
	emitter emitter.Emitter
	logger  *zap.Logger
}

// NewWatchCommand creates a new WatchCommand
func NewWatchCommand(cfg *config.Config, loader *catalogLoader, e emitter.Emitter, logger *zap.Logger) *WatchCommand {
	return &WatchCommand{
		config:  cfg,
		loader:  loader,
		emitter: e,
		logger:  logger,
	}
}

// Execute runs the command until interrupted
func (wc *WatchCommand) Execute(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}
	output := wc.config.Flags.Output

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	color.New(color.FgCyan).Fprintf(cmd.ErrOrStderr(), "Watching %d path(s), writing %s (Ctrl+C to stop)\n", len(paths), output)

	w := watch.New(paths, []string{output}, wc.loader.scanner, wc.config.Debounce, wc.logger, func() error {
		return wc.regenerate(cmd, paths, output)
	})
	return w.Run(ctx)
}

// regenerate rewrites output atomically; on error the previous file stays as it was
func (wc *WatchCommand) regenerate(cmd *cobra.Command, paths []string, output string) error {
	files, cat, err := wc.loader.load(cmd, paths)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := wc.emitter.Emit(&buf, cat); err != nil {
		return err
	}
	if err := storage.WriteFileAtomic(output, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	wc.logger.Info("Catalog regenerated",
		zap.String("output", output),
		zap.Int("files", len(files)),
		zap.Int("cases", len(cat.Cases)),
		zap.Int("plugins", len(cat.Suites)))
	return nil
}
