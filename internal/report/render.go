package report

import "strings"

// IndexFileName is the aggregate index artifact written at the corpus root.
const IndexFileName = "INDEX.md"

// Render produces the full INDEX.md content: a Files section listing every
// processed file's TOC, then Technical Terms and Acronyms glossaries. All
// iteration is in lexicographic order so output is deterministic. The
// artifact is derived state, fully rebuilt each run.
func (r *Report) Render() []byte {
	var b strings.Builder
	b.WriteString("# Documentation Index\n\n")

	b.WriteString("## Files\n\n")
	for _, path := range sortedKeys(r.Files) {
		b.WriteString("### ")
		b.WriteString(path)
		b.WriteString("\n\n")
		for _, h := range r.Files[path] {
			b.WriteString(strings.Repeat("  ", h.Level-1))
			b.WriteString("- [")
			b.WriteString(h.Text)
			b.WriteString("](")
			b.WriteString(path)
			b.WriteString("#")
			b.WriteString(h.Anchor)
			b.WriteString(")\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("## Technical Terms\n\n")
	renderGlossary(&b, r.Terms)
	b.WriteString("\n")

	b.WriteString("## Acronyms\n\n")
	renderGlossary(&b, r.Acronyms)

	return []byte(b.String())
}

func renderGlossary(b *strings.Builder, m map[string]map[string]struct{}) {
	for _, term := range sortedKeys(m) {
		b.WriteString("- **")
		b.WriteString(term)
		b.WriteString("**\n")
		for _, path := range FilesOf(m, term) {
			b.WriteString("  - [")
			b.WriteString(path)
			b.WriteString("](")
			b.WriteString(path)
			b.WriteString(")\n")
		}
	}
}
