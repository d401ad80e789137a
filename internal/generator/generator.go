// Package generator renders a starter env file from code references.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jenian/envguard/internal/analyzer"
)

// FileName is the file written next to the scanned code
const FileName = ".env.example"

// Generate returns one NAME= line per reference, in reference order, each
// preceded by a comment with the primary location
func Generate(refs []analyzer.Reference) string {
	var b strings.Builder

	b.WriteString("# Generated by envguard\n")
	b.WriteString("# Fill in the values and copy to .env\n")

	for _, ref := range refs {
		b.WriteString("\n")
		fmt.Fprintf(&b, "# %s:%d", ref.File, ref.Line)
		if ref.HasDefault {
			b.WriteString(" (optional, has fallback)")
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s=\n", ref.Name)
	}

	return b.String()
}

// WriteFile writes the generated template into dir and returns its path
func WriteFile(dir string, refs []analyzer.Reference) (string, error) {
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(Generate(refs)), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
