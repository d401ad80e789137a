package languages

// rustMatchers covers std::env::var("KEY"), env::var("KEY") and the
// compile-time env!("KEY") macro
var rustMatchers = []Matcher{
	matcher(LanguageRust, `env::var\(\s*"`+NamePattern+`"\s*\)`),
	matcher(LanguageRust, `env!\(\s*"`+NamePattern+`"\s*\)`),
}
