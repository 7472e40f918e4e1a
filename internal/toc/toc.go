// Package toc builds and rewrites "Table of Contents" blocks in Markdown files.
package toc

import (
	"regexp"
	"strings"

	"github.com/mtovey/docindex/internal/parser"
)

const headerLine = "## Table of Contents\n"

var (
	// blockRe matches an existing TOC block: the header line, zero or more
	// list-item lines, and the blank line that terminates the block.
	blockRe = regexp.MustCompile(`## Table of Contents\n(?:[ \t]*-[^\n]*\n)*\n`)

	// firstTopHeadingRe matches the first top-level heading line: exactly
	// one '#' followed by a non-'#' character.
	firstTopHeadingRe = regexp.MustCompile(`(?m)^#[^#].*$`)
)

// Build renders the TOC block for the given headings: one list item per
// heading, indented two spaces per (level - 1), each linking to the
// heading's anchor.
func Build(headings []parser.Heading) string {
	var b strings.Builder
	b.WriteString(headerLine)
	for _, h := range headings {
		b.WriteString(strings.Repeat("  ", h.Level-1))
		b.WriteString("- [")
		b.WriteString(h.Text)
		b.WriteString("](#")
		b.WriteString(h.Anchor)
		b.WriteString(")\n")
	}
	return b.String()
}

// Rewrite returns content with its TOC block inserted or replaced:
//
//   - an existing block is replaced in place;
//   - otherwise the block goes right after the first top-level heading,
//     separated by a blank line;
//   - otherwise it is prepended to the start of the file.
//
// Rewrite is idempotent: applying it twice with the same headings yields
// byte-identical output.
func Rewrite(content string, headings []parser.Heading) string {
	block := Build(headings)

	if blockRe.MatchString(content) {
		return blockRe.ReplaceAllLiteralString(content, block+"\n")
	}

	if loc := firstTopHeadingRe.FindStringIndex(content); loc != nil {
		return content[:loc[1]] + "\n\n" + block + "\n" + content[loc[1]:]
	}

	return block + "\n" + content
}
