package parser

import "regexp"

// Term and acronym candidates are matched against the raw Markdown source,
// code blocks included. Matching is case-sensitive and exact-substring; no
// stemming or stoplist is applied here. The standalone acronym finder
// (internal/acrofind) is a separate utility with deliberately different
// behavior and the two are not unified.
var (
	// termRe matches CamelCase (with lowercase between uppercase letters),
	// snake_case, and hyphenated identifiers as whole words.
	termRe = regexp.MustCompile(`\b(?:[A-Z][a-z]+[A-Z][a-z]+[a-zA-Z]*|[a-z]+_[a-z]+(?:_[a-z]+)*|[a-z]+-[a-z]+(?:-[a-z]+)*)\b`)

	// acronymRe matches a whole-word run of 2+ uppercase letters with an
	// optional trailing plural 's'.
	acronymRe = regexp.MustCompile(`\b[A-Z]{2,}s?\b`)
)

// ExtractTerms returns every term and acronym match in data, in document
// order, duplicates included. Callers accumulate matches into sets.
func ExtractTerms(data []byte) (terms, acronyms []string) {
	for _, m := range termRe.FindAll(data, -1) {
		terms = append(terms, string(m))
	}
	for _, m := range acronymRe.FindAll(data, -1) {
		acronyms = append(acronyms, string(m))
	}
	return terms, acronyms
}
