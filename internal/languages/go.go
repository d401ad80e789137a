package languages

import "strings"

// goMatchers covers os.Getenv("KEY") and os.LookupEnv("KEY")
var goMatchers = []Matcher{
	matcher(LanguageGo, `os\.Getenv\(\s*"`+NamePattern+`"\s*\)`),
	matcher(LanguageGo, `os\.LookupEnv\(\s*"`+NamePattern+`"\s*\)`),
}

// hasGoDefault treats the comma-ok LookupEnv form as handling absence.
// The check is on the whole line, not just the text after the key.
func hasGoDefault(line, _ string) bool {
	return strings.Contains(line, "LookupEnv")
}
