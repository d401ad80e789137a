package languages

import "regexp"

// javaScriptMatchers covers process.env.KEY, process.env["KEY"] and the
// Vite/SvelteKit import.meta.env.KEY form. TypeScript, Vue and Svelte files
// use the same idioms.
var javaScriptMatchers = []Matcher{
	matcher(LanguageJavaScript, `process\.env\.`+NamePattern),
	matcher(LanguageJavaScript, `process\.env\[['"]`+NamePattern+`['"]\]`),
	matcher(LanguageJavaScript, `import\.meta\.env\.`+NamePattern),
}

var jsFallback = regexp.MustCompile(`\|\||\?\?`)

// hasJavaScriptDefault detects process.env.KEY || "x" and process.env.KEY ?? "x"
func hasJavaScriptDefault(_, rest string) bool {
	return jsFallback.MatchString(rest)
}
