// Package scanner enumerates a project's Python source files. It walks the
// project root, skips hidden entries and well-known generated directories,
// and applies configurable include/exclude glob patterns.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Options configures the scanner behavior.
type Options struct {
	Extension       string   // Source file extension to keep (default: .py)
	Include         []string // Glob patterns a relative path must match (empty: all)
	Exclude         []string // Glob patterns that drop a relative path
	SkipHidden      bool     // Skip dotfiles and dot-directories
	DefaultExcludes []string // Directory names never descended into
}

// DefaultOptions returns scanner options suited to Python projects.
func DefaultOptions() Options {
	return Options{
		Extension:  ".py",
		SkipHidden: true,
		DefaultExcludes: []string{
			"__pycache__",
			".git",
			".hg",
			".svn",
			".venv",
			"venv",
			".tox",
			".nox",
			".mypy_cache",
			".pytest_cache",
			".eggs",
			"node_modules",
			"dist",
			"build",
			".idea",
			".vscode",
		},
	}
}

// Scanner lists project source files. It implements the lister collaborator
// of the import assistant.
type Scanner struct {
	opts Options
	root string
}

// New creates a Scanner over root with the given options.
func New(root string, opts Options) *Scanner {
	if opts.Extension == "" {
		opts.Extension = ".py"
	}
	return &Scanner{opts: opts, root: root}
}

// ListProjectFiles walks the root and returns the absolute paths of matching
// source files, in walk order. Unreadable entries are skipped, not fatal.
func (s *Scanner) ListProjectFiles() ([]string, error) {
	absRoot, err := filepath.Abs(s.root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("checking project root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root is not a directory: %s", absRoot)
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(absRoot, path)
		if err != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if s.opts.SkipHidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if s.isDefaultExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) != s.opts.Extension {
			return nil
		}
		if !s.matchesInclude(rel) || s.matchesExclude(rel) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking project root: %w", err)
	}

	return files, nil
}

func (s *Scanner) isDefaultExcluded(name string) bool {
	for _, exclude := range s.opts.DefaultExcludes {
		if strings.EqualFold(name, exclude) {
			return true
		}
	}
	return false
}

func (s *Scanner) matchesInclude(rel string) bool {
	if len(s.opts.Include) == 0 {
		return true
	}
	for _, pattern := range s.opts.Include {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func (s *Scanner) matchesExclude(rel string) bool {
	for _, pattern := range s.opts.Exclude {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
