package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jenian/envguard/internal/analyzer"
	"golang.org/x/term"
)

var (
	// Color support detection
	colorEnabled = term.IsTerminal(int(os.Stdout.Fd()))

	red    = newColor(color.FgRed)
	yellow = newColor(color.FgYellow)
	green  = newColor(color.FgGreen)
	bold   = newColor(color.Bold)
	dim    = newColor(color.Faint)
)

var palette []*color.Color

func newColor(attr color.Attribute) *color.Color {
	c := color.New(attr)
	applyColor(c)
	palette = append(palette, c)
	return c
}

func applyColor(c *color.Color) {
	if colorEnabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

// SetColor forces colors on or off, overriding terminal detection
func SetColor(enabled bool) {
	colorEnabled = enabled
	for _, c := range palette {
		applyColor(c)
	}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Missing []JSONMissing `json:"missing"`
	Unused  []JSONUnused  `json:"unused"`
	Summary JSONSummary   `json:"summary"`
}

// JSONMissing is a missing variable at its primary location
type JSONMissing struct {
	Name       string `json:"name"`
	File       string `json:"file"`
	Line       int    `json:"line"`
	HasDefault bool   `json:"hasDefault"`
}

// JSONUnused is an unused variable and the files declaring it
type JSONUnused struct {
	Name      string   `json:"name"`
	DefinedIn []string `json:"definedIn"`
}

// JSONSummary holds the scan counts
type JSONSummary struct {
	CodeVars   int      `json:"codeVars"`
	EnvVars    int      `json:"envVars"`
	Documented int      `json:"documented"`
	Missing    int      `json:"missing"`
	NoDefault  int      `json:"noDefault"`
	Unused     int      `json:"unused"`
	EnvFiles   []string `json:"envFiles"`
}

// JSON writes the machine-readable report
func JSON(w io.Writer, result analyzer.Result) error {
	out := JSONOutput{
		Missing: make([]JSONMissing, 0, len(result.Missing)),
		Unused:  make([]JSONUnused, 0, len(result.Unused)),
		Summary: JSONSummary{
			CodeVars:   result.CodeVarCount,
			EnvVars:    result.EnvVarCount,
			Documented: len(result.Documented),
			Missing:    len(result.Missing),
			NoDefault:  len(result.NoDefault),
			Unused:     len(result.Unused),
			EnvFiles:   append([]string{}, result.EnvFiles...),
		},
	}

	for _, m := range result.Missing {
		out.Missing = append(out.Missing, JSONMissing{
			Name:       m.Name,
			File:       m.File,
			Line:       m.Line,
			HasDefault: m.HasDefault,
		})
	}
	for _, u := range result.Unused {
		out.Unused = append(out.Unused, JSONUnused{
			Name:      u.Name,
			DefinedIn: append([]string{}, u.Sources...),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// Report writes the human-readable report
func Report(w io.Writer, result analyzer.Result) error {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s%s\n\n", bold.Sprint("envguard"),
		dim.Sprintf(" - scanned %d variables across %d env files", result.CodeVarCount, len(result.EnvFiles)))

	if n := len(result.Missing); n > 0 {
		b.WriteString(red.Sprintf("  ✗ %d missing %s", n, plural(n, "variable")) + "\n")
		for _, m := range result.Missing {
			annotation := dim.Sprint(" (has fallback)")
			if !m.HasDefault {
				annotation = red.Sprint(" (no default!)")
			}
			fmt.Fprintf(&b, "    %s %s %s%s\n", red.Sprint("•"), bold.Sprint(m.Name),
				dim.Sprintf("%s:%d", m.File, m.Line), annotation)
		}
		b.WriteString("\n")
	}

	if n := len(result.Unused); n > 0 {
		b.WriteString(yellow.Sprintf("  ⚠ %d unused %s in env files", n, plural(n, "variable")) + "\n")
		for _, u := range result.Unused {
			fmt.Fprintf(&b, "    %s %s %s\n", yellow.Sprint("•"), bold.Sprint(u.Name),
				dim.Sprintf("defined in %s", strings.Join(u.Sources, ", ")))
		}
		b.WriteString("\n")
	}

	switch {
	case len(result.Missing) == 0 && len(result.Unused) == 0:
		b.WriteString(green.Sprint("  ✓ All environment variables are accounted for") + "\n\n")
	case len(result.Missing) == 0:
		b.WriteString(green.Sprint("  ✓ No missing variables") + "\n\n")
	}

	if result.IgnoredMissing > 0 {
		b.WriteString(dim.Sprintf("  Note: %d missing %s ignored via config", result.IgnoredMissing,
			plural(result.IgnoredMissing, "variable")) + "\n\n")
	}

	stats := []string{
		fmt.Sprintf("%d documented", len(result.Documented)),
		fmt.Sprintf("%d missing", len(result.Missing)),
		fmt.Sprintf("%d unused", len(result.Unused)),
	}
	b.WriteString(dim.Sprint("  "+strings.Join(stats, "  ·  ")) + "\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// HasIssues reports whether the result breaks the active mode: missing
// variables always count, unused ones only in strict mode
func HasIssues(result analyzer.Result, strict bool) bool {
	if len(result.Missing) > 0 {
		return true
	}
	return strict && len(result.Unused) > 0
}
