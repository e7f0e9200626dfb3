package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/l3aro/go-python-imports/internal/config"
	"github.com/l3aro/go-python-imports/internal/scanner"
	"github.com/l3aro/go-python-imports/pkg/moduleindex"
)

var (
	symbolsRoot string
	symbolsJSON bool
	symbolsOut  string
)

// symbolsCmd dumps the module index. It is a diagnostic surface; the from
// and qualify commands always rebuild the index themselves.
var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "Dump the project's module -> top-level symbols index",
	Long: `Scans the project's Python files and prints each derived module name with
the top-level symbols it defines. Module names are derived relative to the
project root. Use --json for JSON output or --out to write a msgpack
snapshot of the index.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSymbols()
	},
}

func runSymbols() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	absRoot, err := filepath.Abs(symbolsRoot)
	if err != nil {
		return fmt.Errorf("resolving project root: %w", err)
	}

	scanOpts := scanner.DefaultOptions()
	scanOpts.Extension = cfg.Extension
	scanOpts.Include = cfg.Include
	scanOpts.Exclude = cfg.Exclude
	if len(cfg.ExcludeDirs) > 0 {
		scanOpts.DefaultExcludes = cfg.ExcludeDirs
	}

	files, err := scanner.New(absRoot, scanOpts).ListProjectFiles()
	if err != nil {
		return err
	}

	// A synthetic reference file at the root makes every derived module
	// name relative to the root itself.
	ref := filepath.Join(absRoot, "__init__"+cfg.Extension)
	idx := moduleindex.Build(files, ref)

	if symbolsOut != "" {
		f, err := os.Create(symbolsOut)
		if err != nil {
			return fmt.Errorf("creating snapshot file: %w", err)
		}
		defer f.Close()
		return idx.Save(f)
	}

	if symbolsJSON {
		data, err := json.MarshalIndent(idx.Modules(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for _, m := range idx.Modules() {
		fmt.Printf("%s: %s\n", m.Name, strings.Join(m.Symbols, ", "))
	}
	return nil
}

func init() {
	symbolsCmd.Flags().StringVar(&symbolsRoot, "root", ".", "Project root to index")
	symbolsCmd.Flags().BoolVar(&symbolsJSON, "json", false, "Output as JSON")
	symbolsCmd.Flags().StringVar(&symbolsOut, "out", "", "Write a msgpack snapshot to this file")
}
