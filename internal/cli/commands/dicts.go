package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/jatoken/internal/morph"
	"github.com/spf13/cobra"
)

// DictsOptions holds options for the dicts command.
type DictsOptions struct {
	Quiet bool // names only, one per line
}

// NewDictsCommand creates the dicts command.
func NewDictsCommand() *cobra.Command {
	opts := &DictsOptions{}
	cmd := &cobra.Command{
		Use:   "dicts",
		Short: "List the built-in dictionaries",
		Long: `List the dictionaries compiled into jatoken.

Any of the listed names can be passed to --dict or set as "dictionary" in
jatoken.yaml.`,
		Example: `  # Show the dictionary table
  jatoken dicts

  # Names only, for scripts
  jatoken dicts -q`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDicts(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Print dictionary names only")

	return cmd
}

func runDicts(w io.Writer, opts *DictsOptions) error {
	infos := morph.Dictionaries()

	if opts.Quiet {
		for _, info := range infos {
			if _, err := fmt.Fprintln(w, info.Name); err != nil {
				return err
			}
		}
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Description", "Default"})
	for _, info := range infos {
		def := ""
		if info.Default {
			def = "yes"
		}
		t.AppendRow(table.Row{info.Name, info.Description, def})
	}
	t.Render()
	return nil
}
