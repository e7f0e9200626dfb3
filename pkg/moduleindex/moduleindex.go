// Package moduleindex builds a project-wide map from Python module names to
// their top-level symbols and answers "which modules define this name"
// queries. Symbols are collected with a line-anchored regex scan; nested and
// class-level definitions are intentionally not collected.
package moduleindex

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// SourceExtension is the file extension stripped when deriving module names.
const SourceExtension = ".py"

var (
	defRe    = regexp.MustCompile(`(?m)^(?:async[ \t]+)?def[ \t]+([A-Za-z_][A-Za-z0-9_]*)`)
	assignRe = regexp.MustCompile(`(?m)^([A-Za-z_][A-Za-z0-9_]*)[ \t]*=[^=]`)
)

// Module is one indexed source file: its derived dotted name and the
// top-level symbols it defines, in scan order, duplicates allowed.
type Module struct {
	Name    string   `msgpack:"name" json:"name"`
	Symbols []string `msgpack:"symbols" json:"symbols"`
}

// Index is an ordered collection of indexed modules. Order follows the file
// enumeration order it was built from.
type Index struct {
	modules []Module
}

// DeriveModuleName computes the dotted module name of filePath relative to
// the deepest directory it shares with referenceFilePath. The source
// extension is stripped and path separators become dots. Returns "" when the
// two paths share no directory; such a file is simply never suggested.
func DeriveModuleName(filePath, referenceFilePath string) string {
	fileSegs := splitPath(filepath.Dir(filePath))
	refSegs := splitPath(filepath.Dir(referenceFilePath))

	common := 0
	for common < len(fileSegs) && common < len(refSegs) && fileSegs[common] == refSegs[common] {
		common++
	}
	if common == 0 {
		return ""
	}

	rel := append(append([]string{}, fileSegs[common:]...), filepath.Base(filePath))
	name := strings.Join(rel, ".")
	return strings.TrimSuffix(name, SourceExtension)
}

// TopLevelSymbols scans src and returns, in order, the names of column-zero
// function definitions followed by the targets of column-zero assignments.
// Indented defs and assignments are not collected; a line inside a
// multi-line expression that happens to match at column zero is (knowingly)
// a false positive.
func TopLevelSymbols(src string) []string {
	var symbols []string
	for _, m := range defRe.FindAllStringSubmatch(src, -1) {
		symbols = append(symbols, m[1])
	}
	for _, m := range assignRe.FindAllStringSubmatch(src, -1) {
		symbols = append(symbols, m[1])
	}
	return symbols
}

// Build indexes the given files. Module names are derived relative to
// referenceFilePath (the file being edited); files whose name derivation
// fails are excluded, and files that cannot be read contribute no symbols.
// The index is cheap to rebuild and is recomputed on every request rather
// than cached.
func Build(files []string, referenceFilePath string) *Index {
	idx := &Index{}
	for _, f := range files {
		name := DeriveModuleName(f, referenceFilePath)
		if name == "" {
			continue
		}
		var symbols []string
		if data, err := os.ReadFile(f); err == nil {
			symbols = TopLevelSymbols(string(data))
		}
		idx.modules = append(idx.modules, Module{Name: name, Symbols: symbols})
	}
	return idx
}

// Suggest returns the names of modules whose symbol list contains name,
// preserving index order. Ties keep the caller-supplied file enumeration
// order.
func (idx *Index) Suggest(name string) []string {
	var out []string
	for _, m := range idx.modules {
		if m.Name == "" {
			continue
		}
		for _, s := range m.Symbols {
			if s == name {
				out = append(out, m.Name)
				break
			}
		}
	}
	return out
}

// Modules returns the indexed modules in order.
func (idx *Index) Modules() []Module {
	return idx.modules
}

// Len returns the number of indexed modules.
func (idx *Index) Len() int {
	return len(idx.modules)
}

func splitPath(dir string) []string {
	dir = filepath.ToSlash(filepath.Clean(dir))
	dir = strings.TrimPrefix(dir, "/")
	if dir == "" || dir == "." {
		return nil
	}
	return strings.Split(dir, "/")
}
