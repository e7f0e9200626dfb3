package importer

import (
	"fmt"
	"strings"

	"github.com/l3aro/go-python-imports/pkg/moduleindex"
	"github.com/l3aro/go-python-imports/pkg/textscan"
)

// Assistant drives one import-insertion request: identifier extraction,
// project indexing, candidate selection and the buffer edit. The index is
// rebuilt from the lister's files on every call; nothing persists between
// requests.
type Assistant struct {
	lister  Lister
	chooser Chooser
	refPath string
}

// New creates an Assistant editing the file at refPath. Module names of
// candidates are derived relative to refPath.
func New(lister Lister, chooser Chooser, refPath string) *Assistant {
	return &Assistant{lister: lister, chooser: chooser, refPath: refPath}
}

// PerformFromImport inserts "from module import name" for the unqualified
// identifier under the buffer's cursor, with the module picked
// interactively from the project modules that define the name.
func (a *Assistant) PerformFromImport(buf *Buffer) error {
	_, _, name := textscan.IdentifierAt(buf.String(), buf.Cursor(), false)
	if name == "" {
		return fmt.Errorf("no identifier at cursor offset %d", buf.Cursor())
	}

	idx, err := a.buildIndex()
	if err != nil {
		return err
	}

	choice := a.chooser.Choose(fmt.Sprintf("Import %q from module:", name), idx.Suggest(name))
	if choice.IsCancelled() || choice.Value() == "" {
		return ErrCancelled
	}

	_, err = InsertFromImport(buf, choice.Value(), name)
	return err
}

// PerformQualifiedImport inserts "import module [as alias]" for the
// (possibly dotted) identifier under the buffer's cursor. A dotted
// identifier is treated as already qualified: its prefix is offered as the
// first module candidate and, when the prefix is a single segment, as the
// alias suggestion. An unqualified identifier additionally gets the chosen
// prefix inserted before it at the usage site.
func (a *Assistant) PerformQualifiedImport(buf *Buffer) error {
	_, _, ident := textscan.IdentifierAt(buf.String(), buf.Cursor(), true)
	ident = strings.Trim(ident, ".")
	if ident == "" {
		return fmt.Errorf("no identifier at cursor offset %d", buf.Cursor())
	}

	parts := strings.Split(ident, ".")
	bare := parts[len(parts)-1]
	qualified := len(parts) > 1

	var prefix, aliasGuess string
	if qualified {
		prefix = strings.Join(parts[:len(parts)-1], ".")
		if !strings.Contains(prefix, ".") {
			aliasGuess = prefix
		}
	}

	idx, err := a.buildIndex()
	if err != nil {
		return err
	}
	candidates := idx.Suggest(bare)
	if qualified {
		candidates = append([]string{prefix}, candidates...)
	}

	moduleChoice := a.chooser.Choose(fmt.Sprintf("Import module for %q:", bare), candidates)
	if moduleChoice.IsCancelled() || moduleChoice.Value() == "" {
		return ErrCancelled
	}
	module := moduleChoice.Value()

	var aliasOptions []string
	if aliasGuess != "" {
		aliasOptions = []string{aliasGuess}
	}
	aliasChoice := a.chooser.Choose("Import as (empty for no alias):", aliasOptions)
	if aliasChoice.IsCancelled() {
		return ErrCancelled
	}
	alias := aliasChoice.Value()

	if _, err := InsertQualifiedImport(buf, module, alias); err != nil {
		return err
	}

	if !qualified {
		usePrefix := alias
		if usePrefix == "" {
			usePrefix = module
		}
		// Re-locate the identifier: the import insertion may have shifted it,
		// but the cursor tracked the shift.
		s, _, _ := textscan.IdentifierAt(buf.String(), buf.Cursor(), true)
		buf.Insert(s, usePrefix+".")
	}
	return nil
}

func (a *Assistant) buildIndex() (*moduleindex.Index, error) {
	files, err := a.lister.ListProjectFiles()
	if err != nil {
		return nil, fmt.Errorf("listing project files: %w", err)
	}
	return moduleindex.Build(files, a.refPath), nil
}
