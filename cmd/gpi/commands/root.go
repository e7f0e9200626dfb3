package commands

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "gpi",
	Short: "go-python-imports - Import statement insertion for Python buffers",
	Long: `go-python-imports inserts Python import statements for the identifier
under an editor cursor, picking the source module from a project-wide
symbol index.

Commands:
  from      Insert "from module import name" for the identifier at a cursor offset
  qualify   Insert "import module [as alias]" and qualify the usage site
  symbols   Dump the project's module -> top-level symbols index
  init      Create a gpi config file interactively

Use "gpi [command] --help" for more information about a command.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(fromCmd)
	RootCmd.AddCommand(qualifyCmd)
	RootCmd.AddCommand(symbolsCmd)
	RootCmd.AddCommand(initCmd)
}
