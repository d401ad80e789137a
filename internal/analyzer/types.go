package analyzer

import "github.com/jenian/envguard/internal/languages"

// Location is a single place in code where a variable is read
type Location struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

// Occurrence is one raw match of an access idiom, before aggregation
type Occurrence struct {
	Name       string
	File       string
	Line       int // 1-based
	Language   languages.Language
	HasDefault bool // True if the same line shows an inline fallback
}

// Reference is one environment variable as used by code, merged across all
// of its occurrences. File and Line are the first occurrence.
type Reference struct {
	Name       string
	File       string
	Line       int
	Language   languages.Language
	HasDefault bool       // True if any occurrence had a fallback
	Locations  []Location // Every occurrence, primary first; nil when there is only one
}

// MissingVar is referenced in code but not declared in any env file
type MissingVar struct {
	Name       string
	File       string
	Line       int
	Language   languages.Language
	HasDefault bool
	Locations  []Location
}

// UnusedVar is declared in an env file but never referenced in code
type UnusedVar struct {
	Name    string
	File    string   // First file that declared it
	Sources []string // All declaring files, in processing order
}

// DocumentedVar is referenced in code and declared in at least one env file
type DocumentedVar struct {
	Name     string
	File     string // Primary code location
	HasValue bool   // Whether any env file gave it a non-empty value
	Sources  []string
}

// Result contains the complete analysis results. It is built once by Analyze
// and not modified afterwards.
type Result struct {
	Missing        []MissingVar
	Unused         []UnusedVar
	Documented     []DocumentedVar
	NoDefault      []MissingVar // Missing and without a fallback in code
	CodeVarCount   int          // Distinct variables referenced in code
	EnvVarCount    int          // Distinct variables declared in env files
	EnvFiles       []string     // Env files that were found and parsed
	IgnoredMissing int          // Missing variables dropped via config
}
