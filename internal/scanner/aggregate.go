package scanner

import "github.com/jenian/envguard/internal/analyzer"

// Aggregate folds per-file occurrences, in the given file order, into one
// Reference per variable name. The first occurrence becomes the primary
// location; later ones are appended to Locations and a fallback on any of
// them marks the whole reference as having a default. References come out in
// first-seen order. The input is not modified.
func Aggregate(perFile [][]analyzer.Occurrence) []analyzer.Reference {
	var order []string
	byName := make(map[string]*analyzer.Reference)

	for _, occurrences := range perFile {
		for _, occ := range occurrences {
			ref, seen := byName[occ.Name]
			if !seen {
				byName[occ.Name] = &analyzer.Reference{
					Name:       occ.Name,
					File:       occ.File,
					Line:       occ.Line,
					Language:   occ.Language,
					HasDefault: occ.HasDefault,
				}
				order = append(order, occ.Name)
				continue
			}

			if ref.Locations == nil {
				ref.Locations = []analyzer.Location{{File: ref.File, Line: ref.Line}}
			}
			ref.Locations = append(ref.Locations, analyzer.Location{File: occ.File, Line: occ.Line})
			if occ.HasDefault {
				ref.HasDefault = true
			}
		}
	}

	refs := make([]analyzer.Reference, 0, len(order))
	for _, name := range order {
		refs = append(refs, *byName[name])
	}
	return refs
}
