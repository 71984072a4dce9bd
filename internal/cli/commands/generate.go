package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tcgen/internal/catalog"
	"tcgen/internal/discovery"
	"tcgen/internal/emitter"
)

// GenerateCommand handles the root command: scan files, write the C catalog to stdout
type GenerateCommand struct {
	parser  *discovery.Parser
	builder *catalog.Builder
	emitter emitter.Emitter
	logger  *zap.Logger
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(parser *discovery.Parser, builder *catalog.Builder, e emitter.Emitter, logger *zap.Logger) *GenerateCommand {
	return &GenerateCommand{
		parser:  parser,
		builder: builder,
		emitter: e,
		logger:  logger,
	}
}

// Execute runs the command. Arguments are files, scanned in the given order;
// an unreadable file aborts before anything is written.
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	cases, err := gc.parser.FindAll(args, nil)
	if err != nil {
		return err
	}

	cat := gc.builder.Build(cases)
	gc.logger.Debug("Catalog built",
		zap.Int("files", len(args)),
		zap.Int("cases", len(cat.Cases)),
		zap.Int("plugins", len(cat.Suites)))

	return gc.emitter.Emit(cmd.OutOrStdout(), cat)
}
