// Package importer mutates Python buffers to add import statements. It
// supports the unqualified "from module import name" form, which merges
// names into an existing statement for the same module, and the qualified
// "import module [as alias]" form, which additionally qualifies the usage
// site. Both forms are idempotent.
package importer

import (
	"regexp"

	"github.com/l3aro/go-python-imports/pkg/textscan"
)

// InsertFromImport ensures "from module import name" is present in the
// buffer. An existing statement already naming the identifier is left
// untouched; an existing statement for the module has ", name" appended;
// otherwise a new line is inserted at the end of the import block. Reports
// whether the buffer changed.
func InsertFromImport(buf *Buffer, module, name string) (bool, error) {
	mod := regexp.QuoteMeta(module)

	exactRe := regexp.MustCompile(`(?m)^from[ \t]+` + mod + `[ \t]+import\b.*\b` + regexp.QuoteMeta(name) + `\b`)
	if exactRe.MatchString(buf.text) {
		return false, nil
	}

	moduleRe := regexp.MustCompile(`(?m)^from[ \t]+` + mod + `[ \t]+import\b.*$`)
	if loc := moduleRe.FindStringIndex(buf.text); loc != nil {
		buf.Insert(loc[1], ", "+name)
		return true, nil
	}

	return insertAtBlockEnd(buf, "from "+module+" import "+name)
}

// InsertQualifiedImport ensures "import module" (with " as alias" when alias
// is non-empty) is present in the buffer. With an empty alias any existing
// import of the module satisfies the request, aliased or not. Reports
// whether the buffer changed.
func InsertQualifiedImport(buf *Buffer, module, alias string) (bool, error) {
	mod := regexp.QuoteMeta(module)

	var existingRe *regexp.Regexp
	line := "import " + module
	if alias != "" {
		line += " as " + alias
		existingRe = regexp.MustCompile(`(?m)^import[ \t]+` + mod + `[ \t]+as[ \t]+` + regexp.QuoteMeta(alias) + `[ \t]*$`)
	} else {
		existingRe = regexp.MustCompile(`(?m)^import[ \t]+` + mod + `([ \t]+as[ \t]+\w+)?[ \t]*$`)
	}
	if existingRe.MatchString(buf.text) {
		return false, nil
	}

	return insertAtBlockEnd(buf, line)
}

// insertAtBlockEnd appends stmt as a new line at the end of the import
// block. At the very top of an empty block no separating newline is needed;
// the statement gets its own terminating newline instead.
func insertAtBlockEnd(buf *Buffer, stmt string) (bool, error) {
	end, err := textscan.ImportBlockEnd(buf.text)
	if err != nil {
		return false, err
	}
	if end == 0 {
		buf.Insert(0, stmt+"\n")
	} else {
		buf.Insert(end, "\n"+stmt)
	}
	return true, nil
}
