// Package cli provides the command-line interface for jatoken.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/leapstack-labs/jatoken/internal/cli/commands"
	"github.com/leapstack-labs/jatoken/internal/cli/config"
	"github.com/leapstack-labs/jatoken/internal/morph"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "jatoken",
		Short: "Japanese morphological tokenizer filter",
		Long: `jatoken reads Japanese text on stdin and prints one token surface form per line.

By default the whole input is one document. With --stream, documents are
separated by a delimiter line; after each document's tokens the delimiter is
echoed and stdout is flushed, so a long-running caller can send many documents
through one process and pay the dictionary load cost once.`,
		Example: `  # Tokenize a sentence
  echo 'すもももももももものうち' | jatoken

  # Stream documents through one process
  printf 'doc one\n---SUDACHI_DOC_END---\ndoc two\n---SUDACHI_DOC_END---\n' | jatoken --stream

  # Use UniDic in search mode
  jatoken --dict uni --mode search < input.txt`,
		Args:    cobra.NoArgs,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for commands that never tokenize
			switch cmd.Name() {
			case "help", "completion", "__complete", "version", "dicts":
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg)

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			if configFile := config.GetConfigFileUsed(); configFile != "" {
				logger.Info("using config file", "path", configFile)
			}
			return nil
		},
		RunE:          runTokenize,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./jatoken.yaml)")
	rootCmd.PersistentFlags().String("delimiter", "", "document delimiter line for --stream (default \""+config.DefaultDelimiter+"\")")
	rootCmd.PersistentFlags().StringP("dict", "d", "", "built-in dictionary: ipa|uni (default \"ipa\")")
	rootCmd.PersistentFlags().StringP("mode", "m", "", "segmentation mode: normal|search|extended (default \"normal\")")
	rootCmd.PersistentFlags().String("user-dict", "", "path to a user dictionary file")
	rootCmd.PersistentFlags().Bool("keep-whitespace", false, "also print whitespace-only tokens, with control characters escaped (newline as \\n)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging on stderr")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text|json (default \"text\")")

	rootCmd.Flags().Bool("stream", false, "process delimiter-separated documents until EOF")

	_ = rootCmd.RegisterFlagCompletionFunc("dict", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return morph.DictionaryNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("mode", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return morph.ModeNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.LogFormatText, config.LogFormatJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version, GitCommit, BuildDate))
	rootCmd.AddCommand(commands.NewDictsCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// newLogger builds the stderr logger. Warnings and errors only, unless verbose.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for jatoken.

To load completions:

Bash:
  $ source <(jatoken completion bash)

Zsh:
  $ jatoken completion zsh > "${fpath[1]}/_jatoken"

Fish:
  $ jatoken completion fish | source

PowerShell:
  PS> jatoken completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
