package languages

// javaMatchers covers System.getenv("KEY"). The no-argument System.getenv()
// map form is not matched since the key is looked up later.
var javaMatchers = []Matcher{
	matcher(LanguageJava, `System\.getenv\(\s*"`+NamePattern+`"\s*\)`),
}
