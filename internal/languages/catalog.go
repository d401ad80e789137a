package languages

import "regexp"

// Language is the source-language tag attached to a matcher
type Language string

const (
	LanguageJavaScript Language = "js"
	LanguagePython     Language = "python"
	LanguageGo         Language = "go"
	LanguageRuby       Language = "ruby"
	LanguageRust       Language = "rust"
	LanguagePHP        Language = "php"
	LanguageDotNet     Language = "dotnet"
	LanguageJava       Language = "java"
)

// NamePattern is the capture used by every matcher for the variable name
const NamePattern = `([A-Z_][A-Z0-9_]*)`

// Matcher recognizes one environment access idiom. Pattern has exactly one
// capturing group, which yields the variable name.
type Matcher struct {
	Pattern  *regexp.Regexp
	Language Language
}

func matcher(lang Language, pattern string) Matcher {
	return Matcher{Pattern: regexp.MustCompile(pattern), Language: lang}
}

// Catalog is the ordered list of matchers applied to every scanned file.
// Supporting a new idiom means appending to it.
var Catalog = concat(
	javaScriptMatchers,
	pythonMatchers,
	goMatchers,
	rubyMatchers,
	rustMatchers,
	phpMatchers,
	dotNetMatchers,
	javaMatchers,
)

func concat(groups ...[]Matcher) []Matcher {
	var all []Matcher
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

// defaultCheckers holds the per-language fallback heuristic. rest is the text
// on the same line after the variable name, line is the whole line.
var defaultCheckers = map[Language]func(line, rest string) bool{
	LanguageJavaScript: hasJavaScriptDefault,
	LanguagePython:     hasPythonDefault,
	LanguageGo:         hasGoDefault,
	LanguageRuby:       hasRubyDefault,
}

// HasDefault reports whether the line shows an inline fallback for the
// variable. Only the current line is inspected, so a fallback on a following
// line is not seen.
func HasDefault(lang Language, line, rest string) bool {
	check, ok := defaultCheckers[lang]
	if !ok {
		return false
	}
	return check(line, rest)
}
