package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// defaultIgnoreDirs are build, dependency and VCS directories that are never
// descended into
var defaultIgnoreDirs = []string{
	"node_modules", ".git", "dist", "build", ".next", "__pycache__",
	"vendor", ".venv", "venv", "env", ".env", "coverage",
	".turbo", ".nuxt", ".output", "target", "bin", "obj",
}

// sourceExtensions is the whitelist of file extensions that get scanned
var sourceExtensions = toSet(
	".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs",
	".py", ".pyw",
	".go",
	".rb", ".erb",
	".rs",
	".php",
	".cs", ".vb",
	".vue", ".svelte",
	".java",
)

func toSet(items ...string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

// isSourceFile checks the extension whitelist. The match is case sensitive.
func isSourceFile(name string) bool {
	return sourceExtensions[filepath.Ext(name)]
}

// isHidden reports dot-prefixed entries. .env is let through.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != ".env"
}

// isIgnoredDir checks the fixed ignore list, then the caller substrings
func (s *Scanner) isIgnoredDir(name string) bool {
	if s.ignoreDirs[name] {
		return true
	}
	for _, p := range s.ignorePatterns {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}

// matchesExclude checks the doublestar globs against the slash path relative
// to the scan root and against the base name
func (s *Scanner) matchesExclude(root, path string) bool {
	if len(s.excludeGlobs) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(path)
	for _, glob := range s.excludeGlobs {
		if ok, err := doublestar.Match(glob, rel); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(glob, base); err == nil && ok {
			return true
		}
	}
	return false
}

// Walk returns the absolute paths of all source files under root, depth
// first. Entries are visited in name order, so the result is stable for a
// given tree. Directories that cannot be read contribute nothing.
func (s *Scanner) Walk(root string) []string {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}
	var files []string
	s.walkDir(absRoot, absRoot, &files)
	return files
}

func (s *Scanner) walkDir(root, dir string, files *[]string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.log.Debugf("Skipping unreadable directory %s: %v", dir, err)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if isHidden(name) {
			continue
		}
		path := filepath.Join(dir, name)

		switch {
		case entry.IsDir():
			if s.isIgnoredDir(name) || s.matchesExclude(root, path) {
				continue
			}
			s.walkDir(root, path, files)
		case entry.Type().IsRegular():
			if !isSourceFile(name) || s.matchesExclude(root, path) {
				continue
			}
			*files = append(*files, path)
		}
	}
}
