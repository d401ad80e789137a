package analyzer

import "github.com/jenian/envguard/internal/envfile"

// Analyze compares the variables referenced in code with those declared in
// env files.
// refs: aggregated code references, one per name
// table: merged env file declarations
//
// Missing and Documented follow the order of refs, Unused follows
// declaration order. Either side may be empty.
func Analyze(refs []Reference, table *envfile.Table) Result {
	if table == nil {
		table = envfile.NewTable()
	}

	result := Result{
		Missing:    []MissingVar{},
		Unused:     []UnusedVar{},
		Documented: []DocumentedVar{},
		NoDefault:  []MissingVar{},
		EnvFiles:   append([]string{}, table.Files...),
	}

	codeNames := make(map[string]bool, len(refs))
	for _, ref := range refs {
		codeNames[ref.Name] = true

		decl, declared := table.Lookup(ref.Name)
		if !declared {
			missing := MissingVar{
				Name:       ref.Name,
				File:       ref.File,
				Line:       ref.Line,
				Language:   ref.Language,
				HasDefault: ref.HasDefault,
				Locations:  copyLocations(ref.Locations),
			}
			result.Missing = append(result.Missing, missing)
			if !missing.HasDefault {
				result.NoDefault = append(result.NoDefault, missing)
			}
			continue
		}

		result.Documented = append(result.Documented, DocumentedVar{
			Name:     ref.Name,
			File:     ref.File,
			HasValue: decl.HasValue,
			Sources:  decl.Sources,
		})
	}

	for _, decl := range table.Declarations() {
		if codeNames[decl.Name] {
			continue
		}
		result.Unused = append(result.Unused, UnusedVar{
			Name:    decl.Name,
			File:    decl.File,
			Sources: decl.Sources,
		})
	}

	result.CodeVarCount = len(codeNames)
	result.EnvVarCount = table.Len()

	return result
}

// WithoutIgnored returns a copy of r with the named variables removed from
// Missing and NoDefault. The number of dropped missing variables is added to
// IgnoredMissing.
func (r Result) WithoutIgnored(names []string) Result {
	if len(names) == 0 {
		return r
	}
	ignored := make(map[string]bool, len(names))
	for _, name := range names {
		ignored[name] = true
	}

	out := r
	out.Missing = []MissingVar{}
	out.NoDefault = []MissingVar{}
	for _, m := range r.Missing {
		if ignored[m.Name] {
			out.IgnoredMissing++
			continue
		}
		out.Missing = append(out.Missing, m)
	}
	for _, m := range r.NoDefault {
		if !ignored[m.Name] {
			out.NoDefault = append(out.NoDefault, m)
		}
	}
	return out
}

func copyLocations(locs []Location) []Location {
	if locs == nil {
		return nil
	}
	return append([]Location(nil), locs...)
}
