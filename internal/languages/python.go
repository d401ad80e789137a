package languages

import "regexp"

// pythonMatchers covers os.environ["KEY"], os.environ.get("KEY", ...) and
// os.getenv("KEY", ...)
var pythonMatchers = []Matcher{
	matcher(LanguagePython, `os\.environ\[['"]`+NamePattern+`['"]\]`),
	matcher(LanguagePython, `os\.environ\.get\(\s*['"]`+NamePattern+`['"]`),
	matcher(LanguagePython, `os\.getenv\(\s*['"]`+NamePattern+`['"]`),
}

var (
	secondStringArg = regexp.MustCompile(`['"],\s*['"]`)
	secondWordArg   = regexp.MustCompile(`['"],\s*\w`)
)

// hasPythonDefault looks for a second positional argument after the key
func hasPythonDefault(_, rest string) bool {
	return secondStringArg.MatchString(rest) || secondWordArg.MatchString(rest)
}
