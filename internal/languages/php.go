package languages

// phpMatchers covers getenv('KEY') and $_ENV['KEY']. A bare getenv call must
// not follow a dot or identifier, which keeps System.getenv and os.getenv to
// their own languages.
var phpMatchers = []Matcher{
	matcher(LanguagePHP, `(?m)(?:^|[^.\w\n])getenv\(\s*['"]`+NamePattern+`['"]\s*\)`),
	matcher(LanguagePHP, `\$_ENV\[['"]`+NamePattern+`['"]\]`),
}
