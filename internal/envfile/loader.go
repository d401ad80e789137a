package envfile

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultFiles are checked, in order, when no env files are configured
var DefaultFiles = []string{
	".env",
	".env.example",
	".env.local",
	".env.development",
	".env.production",
	".env.test",
}

// Loader handles loading and merging environment files
type Loader struct {
	envFiles []string
	log      *logrus.Logger
}

// NewLoader creates a new env file loader that checks DefaultFiles.
// A nil logger discards all output.
func NewLoader(log *logrus.Logger) *Loader {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Loader{
		envFiles: append([]string(nil), DefaultFiles...),
		log:      log,
	}
}

// SetEnvFiles replaces the list of env files to load. An empty list keeps
// the defaults.
func (l *Loader) SetEnvFiles(files []string) {
	if len(files) == 0 {
		return
	}
	l.envFiles = append([]string(nil), files...)
}

// AddEnvFile adds a custom env file to load after the configured ones
func (l *Loader) AddEnvFile(path string) {
	l.envFiles = append(l.envFiles, path)
}

// Load parses every configured file that can be read and merges them in
// order. Relative paths are resolved against rootPath; files that are absent
// or unreadable are skipped.
func (l *Loader) Load(rootPath string) *Table {
	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		absRoot = rootPath
	}

	table := NewTable()
	for _, f := range l.envFiles {
		path := f
		if !filepath.IsAbs(path) {
			path = filepath.Join(absRoot, f)
		}

		vars, ok := ParseFile(path)
		if !ok {
			l.log.Debugf("Env file %s not found or unreadable, skipping", path)
			continue
		}

		rel := relativePath(absRoot, path)
		if _, seen := table.ByFile[rel]; seen {
			l.log.Debugf("Env file %s listed twice, skipping", rel)
			continue
		}
		l.log.Debugf("Loaded %d variables from %s", vars.Len(), rel)
		table.merge(rel, vars)
	}
	return table
}

// ParseAll loads files (or DefaultFiles when files is empty) relative to
// rootPath and merges them in order
func ParseAll(rootPath string, files []string) *Table {
	l := NewLoader(nil)
	l.SetEnvFiles(files)
	return l.Load(rootPath)
}

// ParseFile parses a single environment file using the parser for its type.
// It reports false when the file cannot be read.
func ParseFile(path string) (*Vars, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	switch detectFileType(path) {
	case fileTypeDockerCompose:
		return parseDockerCompose(data), true
	case fileTypeK8s:
		return parseK8s(data), true
	case fileTypeSystemd:
		return parseSystemd(string(data)), true
	default:
		return parseDotEnv(string(data)), true
	}
}

// parseDotEnv parses KEY=VALUE lines. Blank lines, # comments and lines
// without = are skipped; a leading "export " is dropped from the key.
func parseDotEnv(content string) *Vars {
	vars := newVars()

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		if strings.HasPrefix(key, "export ") {
			key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
		}
		if key == "" {
			continue
		}

		vars.set(key, trimQuotes(strings.TrimSpace(value)))
	}

	return vars
}

// trimQuotes removes one layer of matching single or double quotes
func trimQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') ||
			(s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func relativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}
