package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptChooser replays a fixed sequence of choices.
type scriptChooser struct {
	choices []Choice
	next    int
}

func (s *scriptChooser) Choose(prompt string, options []string) Choice {
	if s.next >= len(s.choices) {
		return Cancelled
	}
	c := s.choices[s.next]
	s.next++
	return c
}

// staticLister returns a fixed file list.
type staticLister struct {
	files []string
}

func (s *staticLister) ListProjectFiles() ([]string, error) {
	return s.files, nil
}

func TestInsertFromImport_NewStatement(t *testing.T) {
	buf := NewBuffer("import os\n\nprint(helper())\n", 0)
	changed, err := InsertFromImport(buf, "utils.helpers", "helper")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "import os\nfrom utils.helpers import helper\n\nprint(helper())\n", buf.String())
}

func TestInsertFromImport_Idempotent(t *testing.T) {
	buf := NewBuffer("print(x)\n", 0)
	_, err := InsertFromImport(buf, "moduleA", "x")
	require.NoError(t, err)
	once := buf.String()

	changed, err := InsertFromImport(buf, "moduleA", "x")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, once, buf.String())
}

func TestInsertFromImport_MergesNames(t *testing.T) {
	buf := NewBuffer("print(x, y)\n", 0)
	_, err := InsertFromImport(buf, "moduleA", "x")
	require.NoError(t, err)
	_, err = InsertFromImport(buf, "moduleA", "y")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "from moduleA import x, y")
	assert.Equal(t, 1, strings.Count(buf.String(), "from moduleA"))
}

func TestInsertFromImport_DoesNotTouchOtherModules(t *testing.T) {
	buf := NewBuffer("from moduleA import x\n\nprint(x, y)\n", 0)
	_, err := InsertFromImport(buf, "moduleB", "y")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "from moduleA import x\n")
	assert.Contains(t, buf.String(), "from moduleB import y")
}

func TestInsertFromImport_NameIsNotSubstringMatch(t *testing.T) {
	buf := NewBuffer("from moduleA import foobar\n", 0)
	changed, err := InsertFromImport(buf, "moduleA", "foo")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, buf.String(), "from moduleA import foobar, foo")
}

func TestInsertFromImport_ModuleDotIsLiteral(t *testing.T) {
	// The dot in the module name must not act as a regex wildcard.
	buf := NewBuffer("from utilsxhelpers import thing\n\nprint(thing)\n", 0)
	changed, err := InsertFromImport(buf, "utils.helpers", "thing")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, buf.String(), "from utils.helpers import thing")
}

func TestInsertQualifiedImport_NoDuplicate(t *testing.T) {
	buf := NewBuffer("print(1)\n", 0)
	changed, err := InsertQualifiedImport(buf, "pkg.mod", "m")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = InsertQualifiedImport(buf, "pkg.mod", "m")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1, strings.Count(buf.String(), "import pkg.mod as m"))
}

func TestInsertQualifiedImport_NoAliasMatchesAliased(t *testing.T) {
	buf := NewBuffer("import os as o\n\nprint(1)\n", 0)
	changed, err := InsertQualifiedImport(buf, "os", "")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestInsertQualifiedImport_PrefixModuleDoesNotMatch(t *testing.T) {
	// "import os.path" must not satisfy a request for "import os".
	buf := NewBuffer("import os.path\n\nprint(1)\n", 0)
	changed, err := InsertQualifiedImport(buf, "os", "")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, buf.String(), "import os.path\nimport os\n")
}

func TestPerformFromImport_InsertsSuggestedModule(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "utils"), 0755))
	helperPath := filepath.Join(tmpDir, "utils", "helpers.py")
	require.NoError(t, os.WriteFile(helperPath, []byte("def shared():\n    pass\n"), 0644))

	text := "import os\n\nresult = shared()\n"
	buf := NewBuffer(text, strings.Index(text, "shared")+1)

	chooser := &scriptChooser{choices: []Choice{Selected("utils.helpers")}}
	a := New(&staticLister{files: []string{helperPath}}, chooser, filepath.Join(tmpDir, "edit.py"))

	require.NoError(t, a.PerformFromImport(buf))
	assert.Equal(t, "import os\nfrom utils.helpers import shared\n\nresult = shared()\n", buf.String())
}

func TestPerformFromImport_Cancelled(t *testing.T) {
	text := "result = shared()\n"
	buf := NewBuffer(text, strings.Index(text, "shared"))

	a := New(&staticLister{}, &scriptChooser{choices: []Choice{Cancelled}}, "/proj/edit.py")
	err := a.PerformFromImport(buf)
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, text, buf.String())
}

func TestPerformFromImport_FreeFormModule(t *testing.T) {
	// No candidates: a typed-in module name is used verbatim.
	text := "result = mystery()\n"
	buf := NewBuffer(text, strings.Index(text, "mystery"))

	chooser := &scriptChooser{choices: []Choice{Selected("third.party")}}
	a := New(&staticLister{}, chooser, "/proj/edit.py")

	require.NoError(t, a.PerformFromImport(buf))
	assert.Contains(t, buf.String(), "from third.party import mystery")
}

func TestPerformQualifiedImport_AlreadyImportedNoOp(t *testing.T) {
	// Qualified identifier with its module already imported: full no-op,
	// and the usage site must not be touched.
	text := "\"\"\"doc\"\"\"\n\nimport os\n\nprint(os.getcwd())\n"
	buf := NewBuffer(text, strings.Index(text, "getcwd")+2)

	chooser := &scriptChooser{choices: []Choice{Selected("os"), Selected("")}}
	a := New(&staticLister{}, chooser, "/proj/edit.py")

	require.NoError(t, a.PerformQualifiedImport(buf))
	assert.Equal(t, text, buf.String())
}

func TestPerformQualifiedImport_QualifiesBareIdentifier(t *testing.T) {
	text := "import sys\n\nresult = getcwd()\n"
	buf := NewBuffer(text, strings.Index(text, "getcwd")+1)

	chooser := &scriptChooser{choices: []Choice{Selected("os"), Selected("")}}
	a := New(&staticLister{}, chooser, "/proj/edit.py")

	require.NoError(t, a.PerformQualifiedImport(buf))
	assert.Equal(t, "import sys\nimport os\n\nresult = os.getcwd()\n", buf.String())
}

func TestPerformQualifiedImport_AliasUsedAtUsageSite(t *testing.T) {
	text := "result = array([1])\n"
	buf := NewBuffer(text, strings.Index(text, "array")+1)

	chooser := &scriptChooser{choices: []Choice{Selected("numpy"), Selected("np")}}
	a := New(&staticLister{}, chooser, "/proj/edit.py")

	require.NoError(t, a.PerformQualifiedImport(buf))
	assert.Contains(t, buf.String(), "import numpy as np")
	assert.Contains(t, buf.String(), "result = np.array([1])")
}

func TestPerformQualifiedImport_CancelledAtAliasPrompt(t *testing.T) {
	text := "result = getcwd()\n"
	buf := NewBuffer(text, strings.Index(text, "getcwd"))

	chooser := &scriptChooser{choices: []Choice{Selected("os"), Cancelled}}
	a := New(&staticLister{}, chooser, "/proj/edit.py")

	err := a.PerformQualifiedImport(buf)
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, text, buf.String())
}

func TestPerformQualifiedImport_PrefixIsFirstCandidate(t *testing.T) {
	tmpDir := t.TempDir()
	modPath := filepath.Join(tmpDir, "helpers.py")
	require.NoError(t, os.WriteFile(modPath, []byte("def getcwd():\n    pass\n"), 0644))

	text := "print(os.getcwd())\n"
	buf := NewBuffer(text, strings.Index(text, "getcwd"))

	var seenOptions []string
	chooser := &recordingChooser{
		inner: &scriptChooser{choices: []Choice{Selected("os"), Selected("")}},
		spy:   func(options []string) { seenOptions = append([]string{}, options...) },
	}
	a := New(&staticLister{files: []string{modPath}}, chooser, filepath.Join(tmpDir, "edit.py"))

	require.NoError(t, a.PerformQualifiedImport(buf))
	require.NotEmpty(t, seenOptions)
	assert.Equal(t, "os", seenOptions[0])
	assert.Contains(t, seenOptions, "helpers")
}

// recordingChooser spies on the first prompt's options.
type recordingChooser struct {
	inner *scriptChooser
	spy   func(options []string)
	seen  bool
}

func (r *recordingChooser) Choose(prompt string, options []string) Choice {
	if !r.seen {
		r.spy(options)
		r.seen = true
	}
	return r.inner.Choose(prompt, options)
}

func TestBuffer_InsertTracksCursor(t *testing.T) {
	buf := NewBuffer("abcdef", 3)
	buf.Insert(0, "xx")
	assert.Equal(t, 5, buf.Cursor())
	buf.Insert(buf.Cursor()+1, "yy")
	assert.Equal(t, 5, buf.Cursor())
	assert.Equal(t, "xxabcdyyef", buf.String())
}

func TestPerformFromImport_NoIdentifierAtCursor(t *testing.T) {
	buf := NewBuffer("( )\n", 1)
	a := New(&staticLister{}, &scriptChooser{}, "/proj/edit.py")
	assert.Error(t, a.PerformFromImport(buf))
}
