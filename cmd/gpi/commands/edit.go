package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/l3aro/go-python-imports/internal/config"
	"github.com/l3aro/go-python-imports/internal/log"
	"github.com/l3aro/go-python-imports/internal/prompt"
	"github.com/l3aro/go-python-imports/internal/scanner"
	"github.com/l3aro/go-python-imports/pkg/importer"
)

// editOptions are the flags shared by the from and qualify commands.
type editOptions struct {
	offset     int
	root       string
	write      bool
	jsonOutput bool
	module     string
	alias      string
}

// editResult describes a completed (or no-op) edit for --json output.
type editResult struct {
	Path    string `json:"path"`
	Changed bool   `json:"changed"`
	Cursor  int    `json:"cursor"`
	Text    string `json:"text"`
}

// fixedChooser replays pre-selected values instead of prompting. It backs
// the --module/--alias flags used by editor integrations.
type fixedChooser struct {
	values []string
	next   int
}

func (f *fixedChooser) Choose(prompt string, options []string) importer.Choice {
	if f.next >= len(f.values) {
		return importer.Cancelled
	}
	v := f.values[f.next]
	f.next++
	return importer.Selected(v)
}

// runEdit loads the buffer, wires the assistant's collaborators and applies
// perform to it, then emits or writes the result.
func runEdit(file string, opts editOptions, perform func(*importer.Assistant, *importer.Buffer) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Verbose {
		log.Default().SetLevel(log.DebugLevel)
	}

	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("resolving file path: %w", err)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return fmt.Errorf("reading buffer: %w", err)
	}

	scanOpts := scanner.DefaultOptions()
	scanOpts.Extension = cfg.Extension
	scanOpts.Include = cfg.Include
	scanOpts.Exclude = cfg.Exclude
	if len(cfg.ExcludeDirs) > 0 {
		scanOpts.DefaultExcludes = cfg.ExcludeDirs
	}
	lister := scanner.New(opts.root, scanOpts)

	var chooser importer.Chooser
	if opts.module != "" {
		chooser = &fixedChooser{values: []string{opts.module, opts.alias}}
	} else {
		chooser = prompt.New()
	}

	buf := importer.NewBuffer(string(data), opts.offset)
	assistant := importer.New(lister, chooser, absPath)

	if err := perform(assistant, buf); err != nil {
		if !errors.Is(err, importer.ErrCancelled) {
			return err
		}
		// Cancelled: the buffer is untouched, emit it as-is so editor
		// integrations always receive a well-formed result.
		log.Default().Info("cancelled, buffer unchanged", "file", absPath)
	}

	changed := buf.String() != string(data)
	log.Default().Debug("edit complete", "file", absPath, "changed", changed)

	switch {
	case opts.write:
		if !changed {
			return nil
		}
		info, err := os.Stat(absPath)
		mode := os.FileMode(0644)
		if err == nil {
			mode = info.Mode()
		}
		return os.WriteFile(absPath, []byte(buf.String()), mode)
	case opts.jsonOutput:
		out, err := json.MarshalIndent(editResult{
			Path:    absPath,
			Changed: changed,
			Cursor:  buf.Cursor(),
			Text:    buf.String(),
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	default:
		fmt.Print(buf.String())
		return nil
	}
}
