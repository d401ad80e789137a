package languages

// rubyMatchers covers ENV["KEY"] and ENV.fetch("KEY"). ENV must not be part
// of a longer identifier such as PHP's $_ENV.
var rubyMatchers = []Matcher{
	matcher(LanguageRuby, `(?m)(?:^|[^\w\n])ENV\[['"]`+NamePattern+`['"]\]`),
	matcher(LanguageRuby, `ENV\.fetch\(\s*['"]`+NamePattern+`['"]`),
}

// hasRubyDefault detects ENV.fetch("KEY", "default")
func hasRubyDefault(_, rest string) bool {
	return secondStringArg.MatchString(rest)
}
