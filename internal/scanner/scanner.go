package scanner

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/jenian/envguard/internal/analyzer"
	"github.com/jenian/envguard/internal/languages"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Scanner handles file discovery and reference extraction
type Scanner struct {
	ignoreDirs     map[string]bool // Directory names never descended into
	ignorePatterns []string        // Substrings; a directory containing one is skipped
	excludeGlobs   []string        // doublestar patterns for files and directories
	workers        int
	log            *logrus.Logger
}

// NewScanner creates a new scanner with the default directory exclusions.
// A nil logger discards all output.
func NewScanner(log *logrus.Logger) *Scanner {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Scanner{
		ignoreDirs: toSet(defaultIgnoreDirs...),
		workers:    runtime.NumCPU(),
		log:        log,
	}
}

// AddIgnorePatterns adds directory-name substrings to skip while walking
func (s *Scanner) AddIgnorePatterns(patterns []string) {
	for _, p := range patterns {
		if p != "" {
			s.ignorePatterns = append(s.ignorePatterns, p)
		}
	}
}

// SetExcludeGlobs sets glob patterns to exclude
func (s *Scanner) SetExcludeGlobs(globs []string) {
	s.excludeGlobs = globs
}

// SetWorkers bounds the number of files read concurrently
func (s *Scanner) SetWorkers(n int) {
	if n > 0 {
		s.workers = n
	}
}

// ScanFile reads one file and applies every catalog matcher to it. A file
// that cannot be read yields no occurrences.
func (s *Scanner) ScanFile(path string) []analyzer.Occurrence {
	data, err := os.ReadFile(path)
	if err != nil {
		s.log.Debugf("Failed to read %s: %v", path, err)
		return nil
	}
	return scanContent(path, string(data))
}

func scanContent(path, content string) []analyzer.Occurrence {
	var found []analyzer.Occurrence
	lines := newLineIndex(content)

	for _, m := range languages.Catalog {
		for _, loc := range m.Pattern.FindAllStringSubmatchIndex(content, -1) {
			nameStart, nameEnd := loc[2], loc[3]
			line := lines.lineOf(loc[0])
			text := lines.text(line)
			rest := content[nameEnd:lines.end(nameEnd)]

			found = append(found, analyzer.Occurrence{
				Name:       content[nameStart:nameEnd],
				File:       path,
				Line:       line,
				Language:   m.Language,
				HasDefault: languages.HasDefault(m.Language, text, rest),
			})
		}
	}
	return found
}

// ScanProject walks root, scans the files concurrently and aggregates the
// results in walk order. File paths in the returned references are relative
// to root. The only error is cancellation of ctx.
func (s *Scanner) ScanProject(ctx context.Context, root string) ([]analyzer.Reference, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}
	files := s.Walk(absRoot)
	s.log.Debugf("Found %d source files under %s", len(files), absRoot)

	perFile := make([][]analyzer.Occurrence, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			occ := s.ScanFile(file)
			rel := relativePath(absRoot, file)
			for j := range occ {
				occ[j].File = rel
			}
			perFile[i] = occ
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Aggregate(perFile), nil
}

func relativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// lineIndex maps byte offsets to 1-based line numbers
type lineIndex struct {
	content string
	starts  []int // Offset of the first byte of each line
}

func newLineIndex(content string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{content: content, starts: starts}
}

// lineOf returns one plus the number of newlines before offset
func (l *lineIndex) lineOf(offset int) int {
	return sort.Search(len(l.starts), func(i int) bool { return l.starts[i] > offset })
}

// end returns the offset of the end of the line containing offset
func (l *lineIndex) end(offset int) int {
	if i := strings.IndexByte(l.content[offset:], '\n'); i >= 0 {
		return offset + i
	}
	return len(l.content)
}

// text returns the given 1-based line without its terminator
func (l *lineIndex) text(line int) string {
	start := l.starts[line-1]
	return strings.TrimSuffix(l.content[start:l.end(start)], "\r")
}
