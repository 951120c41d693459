package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/leapstack-labs/jatoken/internal/cli/config"
	"github.com/leapstack-labs/jatoken/internal/filter"
	"github.com/leapstack-labs/jatoken/internal/morph"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runTokenize loads the tokenizer once and runs the filter in the configured mode.
func runTokenize(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.GetConfig(ctx)
	logger := config.GetLogger(ctx)

	start := time.Now()
	analyzer, err := morph.New(cfg.AnalyzerOptions())
	if err != nil {
		return fmt.Errorf("failed to load tokenizer: %w", err)
	}
	logger.Info("tokenizer ready",
		"dictionary", analyzer.Dictionary(),
		"mode", analyzer.Mode(),
		"elapsed", time.Since(start).Round(time.Millisecond))

	f := filter.New(analyzer,
		filter.WithDelimiter(cfg.Delimiter),
		filter.WithLogger(logger))

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()

	if cfg.Stream {
		logger.Info("streaming mode", "delimiter", f.Delimiter())
		_, err := f.RunStream(ctx, in, out)
		return err
	}

	if isTerminal(in) {
		logger.Info("reading from terminal, end input with Ctrl-D")
	}
	_, err = f.RunOneShot(ctx, in, out)
	return err
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	file, ok := r.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
