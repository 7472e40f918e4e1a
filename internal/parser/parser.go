// Package parser extracts headings, technical terms, and acronyms from Markdown content.
package parser

import (
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
)

// Heading is one entry in a document's table of contents.
type Heading struct {
	Level  int    `json:"level"`
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
}

// Document holds everything extracted from a single Markdown file.
type Document struct {
	Headings []Heading
	Terms    []string
	Acronyms []string
	Title    string
}

// tocHeadingText is the heading the TOC rewriter inserts. It is excluded
// from extraction so that rewriting a file twice stays byte-stable.
const tocHeadingText = "Table of Contents"

// ParseDocument extracts headings, terms, and acronyms from raw Markdown bytes.
func ParseDocument(data []byte) *Document {
	headings := ExtractHeadings(data)
	terms, acronyms := ExtractTerms(data)
	return &Document{
		Headings: headings,
		Terms:    terms,
		Acronyms: acronyms,
		Title:    deriveTitle(headings),
	}
}

// ExtractHeadings parses Markdown with goldmark and returns h1..h6 headings
// in document order. Heading text is the trimmed inner text with nested
// markup stripped and HTML entities decoded. Malformed Markdown degrades to
// best-effort parsing and never fails.
func ExtractHeadings(data []byte) []Heading {
	doc := goldmark.DefaultParser().Parse(gtext.NewReader(data))

	var out []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		text := headingText(h, data)
		if h.Level == 2 && text == tocHeadingText {
			return ast.WalkSkipChildren, nil
		}
		out = append(out, Heading{Level: h.Level, Text: text, Anchor: Slug(text)})
		return ast.WalkSkipChildren, nil
	})
	return out
}

// Slug derives the anchor for a heading: lowercase, spaces replaced by
// hyphens, and the literal characters '.', '(' and ')' removed. It is a
// pure function of the text; identical headings yield identical slugs.
func Slug(text string) string {
	s := strings.ToLower(text)
	s = strings.ReplaceAll(s, " ", "-")
	return strings.NewReplacer(".", "", "(", "", ")", "").Replace(s)
}

// headingText collects the plain text of a heading, descending through
// nested inline markup (emphasis, links, code spans).
func headingText(h ast.Node, source []byte) string {
	var b strings.Builder
	collectText(h, source, &b)
	return strings.TrimSpace(html.UnescapeString(b.String()))
}

func collectText(n ast.Node, source []byte, b *strings.Builder) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		default:
			collectText(c, source, b)
		}
	}
}

// deriveTitle returns the first level-1 heading, or empty string.
func deriveTitle(headings []Heading) string {
	for _, h := range headings {
		if h.Level == 1 {
			return h.Text
		}
	}
	return ""
}
