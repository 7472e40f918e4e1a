// Package acrofind scans Markdown files for acronym candidates and keeps
// an acronyms.md glossary up to date with the ones not yet documented.
package acrofind

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// AcronymsFileName is the glossary file maintained at the documentation root.
const AcronymsFileName = "acronyms.md"

var (
	// All-caps tokens of 3+ characters, optionally compound (TCP/IP).
	candidateRe = regexp.MustCompile(`\b[A-Z][A-Z0-9]{2,}(?:/[A-Z0-9]+)*\b`)

	versionRe = regexp.MustCompile(`^V\d`)
	hexRe     = regexp.MustCompile(`^[A-F0-9]+$`)

	// Fenced code blocks plus runs of 4-space indented lines.
	codeBlockRe = regexp.MustCompile("```(?s:.*?)```" + `|(?:(?:\A|\n)    [^\n]*)+`)

	// Glossary headers like "## ABC (Some Description)".
	existingRe = regexp.MustCompile(`##\s+([A-Z][A-Z0-9/]+(?:-[A-Z0-9]+)*)`)
)

// Directories never scanned in recursive mode.
var skipDirs = map[string]struct{}{
	"snippets":     {},
	"node_modules": {},
	".git":         {},
	"__pycache__":  {},
	"venv":         {},
	"env":          {},
}

// Finder scans a documentation tree for undocumented acronyms.
type Finder struct {
	root   string
	logger *slog.Logger
}

// New creates a Finder rooted at dir.
func New(root string, logger *slog.Logger) *Finder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Finder{root: root, logger: logger}
}

// ExistingAcronyms reads the glossary and returns the acronyms it already
// documents. A missing glossary is not an error; the set is just empty.
func (f *Finder) ExistingAcronyms() map[string]struct{} {
	existing := make(map[string]struct{})
	data, err := os.ReadFile(filepath.Join(f.root, AcronymsFileName))
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Warn("failed to read glossary", slog.String("error", err.Error()))
		}
		return existing
	}
	for _, m := range existingRe.FindAllStringSubmatch(string(data), -1) {
		existing[m[1]] = struct{}{}
	}
	return existing
}

// FindInContent returns the acronym candidates in one document, after the
// filtering rules. Matches inside code blocks are dropped.
func FindInContent(content string) map[string]struct{} {
	codeRanges := codeBlockRe.FindAllStringIndex(content, -1)
	inCode := func(pos int) bool {
		for _, r := range codeRanges {
			if r[0] <= pos && pos <= r[1] {
				return true
			}
		}
		return false
	}

	found := make(map[string]struct{})
	for _, m := range candidateRe.FindAllStringIndex(content, -1) {
		word := content[m[0]:m[1]]
		if !likelyAcronym(word) {
			continue
		}
		if _, stopped := stoplist[word]; stopped {
			continue
		}
		if inCode(m[0]) {
			continue
		}
		found[word] = struct{}{}
	}
	return found
}

func likelyAcronym(word string) bool {
	if len(word) > 10 || len(word) < 3 {
		return false
	}
	if versionRe.MatchString(word) {
		return false
	}
	if strings.ContainsAny(word, "._") {
		return false
	}
	// Hex colors and hashes.
	if hexRe.MatchString(word) {
		return false
	}
	return true
}

// Scan walks the tree and returns every undocumented acronym candidate.
// In non-recursive mode only top-level files are scanned.
func (f *Finder) Scan(recursive bool) (map[string]struct{}, error) {
	all := make(map[string]struct{})

	scanFile := func(path, rel string) {
		f.logger.Info("scanning", slog.String("path", rel))
		data, err := os.ReadFile(path)
		if err != nil {
			f.logger.Warn("failed to read file", slog.String("path", rel), slog.String("error", err.Error()))
			return
		}
		for a := range FindInContent(string(data)) {
			all[a] = struct{}{}
		}
	}

	if !recursive {
		entries, err := os.ReadDir(f.root)
		if err != nil {
			return nil, fmt.Errorf("read dir: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") || e.Name() == AcronymsFileName {
				continue
			}
			scanFile(filepath.Join(f.root, e.Name()), e.Name())
		}
		return all, nil
	}

	err := filepath.WalkDir(f.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			f.logger.Warn("walk error", slog.String("path", path), slog.String("error", err.Error()))
			return nil
		}
		if d.IsDir() {
			if _, skip := skipDirs[d.Name()]; skip {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".md") || d.Name() == AcronymsFileName {
			return nil
		}
		rel, relErr := filepath.Rel(f.root, path)
		if relErr != nil {
			rel = path
		}
		scanFile(path, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}
	return all, nil
}

// Run scans the tree and appends stub entries to the glossary for every
// new acronym. It returns the new acronyms in sorted order.
func (f *Finder) Run(recursive bool) ([]string, error) {
	existing := f.ExistingAcronyms()

	all, err := f.Scan(recursive)
	if err != nil {
		return nil, err
	}

	var fresh []string
	for a := range all {
		if _, known := existing[a]; !known {
			fresh = append(fresh, a)
		}
	}
	sort.Strings(fresh)

	if len(fresh) == 0 {
		f.logger.Info("no new acronyms found")
		return nil, nil
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, a := range fresh {
		fmt.Fprintf(&b, "\n## %s ()\n", a)
		b.WriteString("- **Category**: Description\n")
	}

	glossary := filepath.Join(f.root, AcronymsFileName)
	out, err := os.OpenFile(glossary, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open glossary: %w", err)
	}
	defer out.Close()
	if _, err := out.WriteString(b.String()); err != nil {
		return nil, fmt.Errorf("append glossary: %w", err)
	}

	f.logger.Info("glossary updated", slog.Int("new_acronyms", len(fresh)))
	return fresh, nil
}
