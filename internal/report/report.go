// Package report accumulates extraction results across files and renders
// the aggregate INDEX.md artifact.
package report

import (
	"sort"

	"github.com/mtovey/docindex/internal/parser"
)

// Report collects per-file tables of contents and term/acronym occurrence
// sets across a run. It is plain data passed explicitly between steps;
// Add is the single merge point.
type Report struct {
	// Files maps a relative path to its ordered heading sequence. Every
	// processed file has an entry, even with zero headings.
	Files map[string][]parser.Heading
	// Terms and Acronyms map each matched string to the set of files it
	// occurs in. Accumulation is additive; nothing is removed during a run.
	Terms    map[string]map[string]struct{}
	Acronyms map[string]map[string]struct{}
}

// New returns an empty Report.
func New() *Report {
	return &Report{
		Files:    make(map[string][]parser.Heading),
		Terms:    make(map[string]map[string]struct{}),
		Acronyms: make(map[string]map[string]struct{}),
	}
}

// Add merges one file's extraction results into the report.
func (r *Report) Add(path string, doc *parser.Document) {
	r.Files[path] = doc.Headings
	addAll(r.Terms, doc.Terms, path)
	addAll(r.Acronyms, doc.Acronyms, path)
}

// Merge folds other into r. Heading sequences in other win on path collision.
func (r *Report) Merge(other *Report) {
	for path, headings := range other.Files {
		r.Files[path] = headings
	}
	for term, files := range other.Terms {
		for path := range files {
			addOne(r.Terms, term, path)
		}
	}
	for term, files := range other.Acronyms {
		for path := range files {
			addOne(r.Acronyms, term, path)
		}
	}
}

func addAll(m map[string]map[string]struct{}, keys []string, path string) {
	for _, k := range keys {
		addOne(m, k, path)
	}
}

func addOne(m map[string]map[string]struct{}, key, path string) {
	set, ok := m[key]
	if !ok {
		set = make(map[string]struct{})
		m[key] = set
	}
	set[path] = struct{}{}
}

// FilesOf returns the sorted file paths recorded for a term in the given map.
func FilesOf(m map[string]map[string]struct{}, term string) []string {
	set, ok := m[term]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
