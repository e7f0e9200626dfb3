// Package main implements the go-python-imports CLI (gpi).
// It inserts Python import statements for the identifier under an editor
// cursor, backed by a project-wide symbol index.
package main

import (
	"os"

	"github.com/l3aro/go-python-imports/cmd/gpi/commands"
)

var version = "dev"

func main() {
	commands.RootCmd.Version = version
	commands.RootCmd.SetVersionTemplate(`gpi version {{.Version}}
`)

	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
