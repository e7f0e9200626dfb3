package commands

import (
	"github.com/spf13/cobra"

	"github.com/l3aro/go-python-imports/pkg/importer"
)

var fromOpts editOptions

// fromCmd inserts an unqualified from-import for the identifier at the
// cursor offset.
var fromCmd = &cobra.Command{
	Use:   "from FILE",
	Short: `Insert "from module import name" for the identifier at a cursor offset`,
	Long: `Extracts the identifier at --offset in FILE, indexes the project's Python
files, prompts for the module that defines it and inserts (or extends) the
matching "from module import ..." statement at the end of the import block.

By default the edited buffer is printed to stdout; use --write to update
FILE in place, or --json for a structured edit description. Pass --module
to skip the prompt (for editor integrations).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(args[0], fromOpts, func(a *importer.Assistant, buf *importer.Buffer) error {
			return a.PerformFromImport(buf)
		})
	},
}

func init() {
	fromCmd.Flags().IntVar(&fromOpts.offset, "offset", 0, "Cursor offset in the buffer (bytes)")
	fromCmd.Flags().StringVar(&fromOpts.root, "root", ".", "Project root to index")
	fromCmd.Flags().BoolVar(&fromOpts.write, "write", false, "Write the result back to FILE")
	fromCmd.Flags().BoolVar(&fromOpts.jsonOutput, "json", false, "Print the edit as JSON")
	fromCmd.Flags().StringVar(&fromOpts.module, "module", "", "Module to import from (skips the prompt)")
	_ = fromCmd.MarkFlagRequired("offset")
}
