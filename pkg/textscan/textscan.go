// Package textscan provides stateless position operations over Python source
// buffers: skipping leading comments and module docstrings, locating the end
// of the import block, and extracting the identifier under a cursor offset.
// It is deliberately a line-anchored pattern matcher, not a parser.
package textscan

import (
	"errors"
	"regexp"
	"strings"
)

// ErrUnterminatedString is returned when a module docstring opens a string
// literal whose closing delimiter cannot be found.
var ErrUnterminatedString = errors.New("unterminated string literal")

var (
	// Single-line import statements only. Continuations and parenthesized
	// name lists are out of scope.
	fromImportRe = regexp.MustCompile(`^from[ \t]+\S+[ \t]+import\b`)
	importRe     = regexp.MustCompile(`^import\b`)

	// Closing quote not immediately preceded by a backslash. The ^ branch
	// covers an empty literal where the closing quote is the first char.
	singleQuoteCloseRe = regexp.MustCompile(`(?s)(?:^|[^\\])'`)
	doubleQuoteCloseRe = regexp.MustCompile(`(?s)(?:^|[^\\])"`)
)

// SkipLeadingComments returns the offset of the first line whose first
// non-whitespace character is not a comment marker, with any blank lines
// after the comment run skipped as well.
func SkipLeadingComments(text string) int {
	pos := 0
	for pos < len(text) {
		end := lineEnd(text, pos)
		trimmed := strings.TrimSpace(text[pos:end])
		if !strings.HasPrefix(trimmed, "#") {
			break
		}
		pos = nextLine(text, end)
	}
	return skipBlankLines(text, pos)
}

// SkipModuleDocstring advances past a string literal starting at the next
// non-whitespace character after pos, if there is one. Triple-quoted
// literals end at the next occurrence of the same triple delimiter;
// single-quoted and double-quoted literals end at the first unescaped
// matching quote. Returns pos unchanged when no literal starts there.
func SkipModuleDocstring(text string, pos int) (int, error) {
	p := pos
	for p < len(text) && isSpace(text[p]) {
		p++
	}
	if p >= len(text) {
		return pos, nil
	}

	rest := text[p:]
	for _, delim := range []string{`"""`, "'''"} {
		if strings.HasPrefix(rest, delim) {
			closing := strings.Index(rest[len(delim):], delim)
			if closing < 0 {
				return pos, ErrUnterminatedString
			}
			return p + len(delim) + closing + len(delim), nil
		}
	}

	var closeRe *regexp.Regexp
	switch rest[0] {
	case '\'':
		closeRe = singleQuoteCloseRe
	case '"':
		closeRe = doubleQuoteCloseRe
	default:
		return pos, nil
	}
	loc := closeRe.FindStringIndex(rest[1:])
	if loc == nil {
		return pos, ErrUnterminatedString
	}
	return p + 1 + loc[1], nil
}

// ImportBlockEnd returns the offset marking the end of the file's import
// block: the position just after the last consecutive single-line import
// statement following the leading comments and optional module docstring,
// with trailing whitespace trimmed. When the file has no imports the result
// is the (trimmed) position after the comments and docstring.
func ImportBlockEnd(text string) (int, error) {
	pos := SkipLeadingComments(text)
	pos, err := SkipModuleDocstring(text, pos)
	if err != nil {
		return 0, err
	}

	end := pos
	for {
		p := skipBlankLines(text, pos)
		if p >= len(text) {
			break
		}
		lineStop := lineEnd(text, p)
		line := text[p:lineStop]
		if !fromImportRe.MatchString(line) && !importRe.MatchString(line) {
			break
		}
		end = lineStop
		pos = nextLine(text, lineStop)
	}

	return len(strings.TrimRight(text[:end], " \t\r\n")), nil
}

// IdentifierAt extends left and right from offset across identifier
// characters (alphanumerics and underscore, plus dot when qualified is
// true) and returns the span bounds and the identifier itself. When the
// offset sits just past an identifier the scan steps back onto it. An empty
// word means no identifier at the cursor.
func IdentifierAt(text string, offset int, qualified bool) (start, end int, word string) {
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}

	isWord := func(c byte) bool {
		if c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			return true
		}
		return qualified && c == '.'
	}

	// Cursor may sit on the char after the identifier.
	if (offset >= len(text) || !isWord(text[offset])) && offset > 0 && isWord(text[offset-1]) {
		offset--
	}

	start, end = offset, offset
	for start > 0 && isWord(text[start-1]) {
		start--
	}
	for end < len(text) && isWord(text[end]) {
		end++
	}
	return start, end, text[start:end]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// lineEnd returns the offset of the newline terminating the line containing
// pos, or len(text) when it is the last line.
func lineEnd(text string, pos int) int {
	if i := strings.IndexByte(text[pos:], '\n'); i >= 0 {
		return pos + i
	}
	return len(text)
}

// nextLine returns the offset just past the newline at or after lineStop.
func nextLine(text string, lineStop int) int {
	if lineStop < len(text) && text[lineStop] == '\n' {
		return lineStop + 1
	}
	return lineStop
}

// skipBlankLines advances pos past lines that contain only whitespace.
func skipBlankLines(text string, pos int) int {
	for pos < len(text) {
		end := lineEnd(text, pos)
		if strings.TrimSpace(text[pos:end]) != "" {
			break
		}
		pos = nextLine(text, end)
	}
	return pos
}
