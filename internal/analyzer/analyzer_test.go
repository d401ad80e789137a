package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jenian/envguard/internal/envfile"
	"github.com/jenian/envguard/internal/languages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadTable writes the given env files into a temp dir and parses them in
// the order given
func loadTable(t *testing.T, files ...[2]string) *envfile.Table {
	t.Helper()
	dir := t.TempDir()
	var names []string
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f[0]), []byte(f[1]), 0644))
		names = append(names, f[0])
	}
	if len(names) == 0 {
		return envfile.ParseAll(dir, []string{"none.env"})
	}
	return envfile.ParseAll(dir, names)
}

func names[T any](items []T, name func(T) string) []string {
	out := []string{}
	for _, item := range items {
		out = append(out, name(item))
	}
	return out
}

func missingNames(r Result) []string {
	return names(r.Missing, func(m MissingVar) string { return m.Name })
}

func unusedNames(r Result) []string {
	return names(r.Unused, func(u UnusedVar) string { return u.Name })
}

func documentedNames(r Result) []string {
	return names(r.Documented, func(d DocumentedVar) string { return d.Name })
}

func TestAnalyze_MissingKeys(t *testing.T) {
	refs := []Reference{
		{Name: "STRIPE_KEY", File: "payments.js", Line: 10},
		{Name: "DATABASE_URL", File: "db.go", Line: 20},
		{Name: "API_KEY", File: "api.js", Line: 30},
	}
	table := loadTable(t, [2]string{".env", "API_KEY=test123\n"})

	result := Analyze(refs, table)

	assert.Equal(t, []string{"STRIPE_KEY", "DATABASE_URL"}, missingNames(result))
	assert.Equal(t, []string{"API_KEY"}, documentedNames(result))
	assert.Empty(t, result.Unused)
}

func TestAnalyze_UnusedKeys(t *testing.T) {
	refs := []Reference{{Name: "STRIPE_KEY", File: "payments.js", Line: 10}}
	table := loadTable(t,
		[2]string{".env", "STRIPE_KEY=sk_test_123\nOLD_API_KEY=old123\n"},
		[2]string{".env.local", "UNUSED_VAR=unused\nOLD_API_KEY=\n"},
	)

	result := Analyze(refs, table)

	assert.Equal(t, []string{"OLD_API_KEY", "UNUSED_VAR"}, unusedNames(result))
	assert.Equal(t, UnusedVar{
		Name:    "OLD_API_KEY",
		File:    ".env",
		Sources: []string{".env", ".env.local"},
	}, result.Unused[0])
	assert.Empty(t, result.Missing)
}

func TestAnalyze_NoIssues(t *testing.T) {
	refs := []Reference{
		{Name: "STRIPE_KEY", File: "payments.js", Line: 10},
		{Name: "DATABASE_URL", File: "db.go", Line: 20},
	}
	table := loadTable(t, [2]string{".env", "STRIPE_KEY=sk_test_123\nDATABASE_URL=postgres://localhost/db\n"})

	result := Analyze(refs, table)

	assert.Empty(t, result.Missing)
	assert.Empty(t, result.Unused)
	assert.Empty(t, result.NoDefault)
	assert.Len(t, result.Documented, 2)
	assert.Equal(t, 2, result.CodeVarCount)
	assert.Equal(t, 2, result.EnvVarCount)
	assert.Equal(t, []string{".env"}, result.EnvFiles)
}

func TestAnalyze_PortAndSecretScenario(t *testing.T) {
	refs := []Reference{
		{Name: "PORT", File: "index.js", Line: 3, Language: languages.LanguageJavaScript, HasDefault: true},
		{Name: "JWT_SECRET", File: "index.js", Line: 4, Language: languages.LanguageJavaScript},
	}
	table := loadTable(t, [2]string{".env", "PORT=8080\n"})

	result := Analyze(refs, table)

	assert.Equal(t, []DocumentedVar{
		{Name: "PORT", File: "index.js", HasValue: true, Sources: []string{".env"}},
	}, result.Documented)

	expected := MissingVar{
		Name:     "JWT_SECRET",
		File:     "index.js",
		Line:     4,
		Language: languages.LanguageJavaScript,
	}
	assert.Equal(t, []MissingVar{expected}, result.Missing)
	assert.Equal(t, []MissingVar{expected}, result.NoDefault)
}

func TestAnalyze_LegacyVarIsUnused(t *testing.T) {
	table := loadTable(t, [2]string{".env.example", "LEGACY_VAR=old\n"})

	result := Analyze(nil, table)

	assert.Equal(t, []UnusedVar{
		{Name: "LEGACY_VAR", File: ".env.example", Sources: []string{".env.example"}},
	}, result.Unused)
	assert.Equal(t, 0, result.CodeVarCount)
}

func TestAnalyze_NoDefaultSubset(t *testing.T) {
	refs := []Reference{
		{Name: "A", File: "a.js", Line: 1, HasDefault: true},
		{Name: "B", File: "a.js", Line: 2},
		{Name: "C", File: "a.js", Line: 3,
			Locations: []Location{{File: "a.js", Line: 3}, {File: "b.js", Line: 1}}},
	}

	result := Analyze(refs, loadTable(t))

	assert.Equal(t, []string{"A", "B", "C"}, missingNames(result))
	assert.Equal(t, []string{"B", "C"}, names(result.NoDefault, func(m MissingVar) string { return m.Name }))
	assert.Equal(t, refs[2].Locations, result.Missing[2].Locations)
}

func TestAnalyze_EmptyInputs(t *testing.T) {
	result := Analyze(nil, nil)

	assert.NotNil(t, result.Missing)
	assert.NotNil(t, result.Unused)
	assert.NotNil(t, result.Documented)
	assert.NotNil(t, result.NoDefault)
	assert.Empty(t, result.EnvFiles)
	assert.Equal(t, 0, result.CodeVarCount)
	assert.Equal(t, 0, result.EnvVarCount)
}

func TestAnalyze_Partitions(t *testing.T) {
	refs := []Reference{
		{Name: "A", File: "x.js", Line: 1},
		{Name: "B", File: "x.js", Line: 2},
		{Name: "C", File: "x.js", Line: 3},
		{Name: "D", File: "x.js", Line: 4},
	}
	table := loadTable(t,
		[2]string{".env", "B=1\nE=\n"},
		[2]string{".env.local", "D=\nF=2\nB=3\n"},
	)

	result := Analyze(refs, table)

	// missing and documented split the code names with no overlap
	code := append(missingNames(result), documentedNames(result)...)
	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, code)

	// unused and documented split the declared names with no overlap
	declared := append(unusedNames(result), documentedNames(result)...)
	assert.ElementsMatch(t, table.Names(), declared)

	assert.Equal(t, 4, result.CodeVarCount)
	assert.Equal(t, 4, result.EnvVarCount)
	assert.Equal(t, []string{"B", "D"}, documentedNames(result))
	assert.False(t, result.Documented[1].HasValue)
}

func TestResult_WithoutIgnored(t *testing.T) {
	refs := []Reference{
		{Name: "STRIPE_KEY", File: "payments.js", Line: 10},
		{Name: "DATABASE_URL", File: "db.go", Line: 20},
		{Name: "CUSTOM_VAR", File: "custom.go", Line: 5, HasDefault: true},
	}
	table := loadTable(t, [2]string{".env", "STRIPE_KEY=sk_test_123\n"})

	result := Analyze(refs, table)
	filtered := result.WithoutIgnored([]string{"CUSTOM_VAR", "DATABASE_URL", "NOT_MISSING"})

	assert.Empty(t, filtered.Missing)
	assert.Empty(t, filtered.NoDefault)
	assert.Equal(t, 2, filtered.IgnoredMissing)

	// the receiver is left unchanged
	assert.Equal(t, []string{"DATABASE_URL", "CUSTOM_VAR"}, missingNames(result))
	assert.Equal(t, 0, result.IgnoredMissing)

	assert.Equal(t, result, result.WithoutIgnored(nil))
}
