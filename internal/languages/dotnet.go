package languages

// dotNetMatchers covers Environment.GetEnvironmentVariable("KEY") in C# and VB
var dotNetMatchers = []Matcher{
	matcher(LanguageDotNet, `Environment\.GetEnvironmentVariable\(\s*"`+NamePattern+`"\s*\)`),
}
