package commands

import (
	"github.com/spf13/cobra"

	"github.com/l3aro/go-python-imports/pkg/importer"
)

var qualifyOpts editOptions

// qualifyCmd inserts a qualified import for the identifier at the cursor
// offset and qualifies the usage site when it was bare.
var qualifyCmd = &cobra.Command{
	Use:   "qualify FILE",
	Short: `Insert "import module [as alias]" and qualify the usage site`,
	Long: `Extracts the (possibly dotted) identifier at --offset in FILE and inserts
the matching "import module [as alias]" statement. A dotted identifier such
as os.getcwd is treated as already qualified: its prefix becomes the first
module candidate and the usage site is left alone. A bare identifier gets
"module." (or "alias.") inserted in front of it.

By default the edited buffer is printed to stdout; use --write to update
FILE in place, or --json for a structured edit description. Pass --module
(and optionally --alias) to skip the prompts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(args[0], qualifyOpts, func(a *importer.Assistant, buf *importer.Buffer) error {
			return a.PerformQualifiedImport(buf)
		})
	},
}

func init() {
	qualifyCmd.Flags().IntVar(&qualifyOpts.offset, "offset", 0, "Cursor offset in the buffer (bytes)")
	qualifyCmd.Flags().StringVar(&qualifyOpts.root, "root", ".", "Project root to index")
	qualifyCmd.Flags().BoolVar(&qualifyOpts.write, "write", false, "Write the result back to FILE")
	qualifyCmd.Flags().BoolVar(&qualifyOpts.jsonOutput, "json", false, "Print the edit as JSON")
	qualifyCmd.Flags().StringVar(&qualifyOpts.module, "module", "", "Module to import (skips the prompts)")
	qualifyCmd.Flags().StringVar(&qualifyOpts.alias, "alias", "", "Alias for the module (with --module)")
	_ = qualifyCmd.MarkFlagRequired("offset")
}
