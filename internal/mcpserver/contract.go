package mcpserver

// IndexFormatContract describes the generated TOC block and INDEX.md formats
// that LLM consumers should expect when reading or producing either.
const IndexFormatContract = `# docindex Generated Format Contract

The indexer rewrites two kinds of generated Markdown. Both are byte-stable:
re-running the indexer on an unchanged tree produces identical output.

## Table of Contents block

Inserted into every file that has at least one heading.

` + "```" + `markdown
## Table of Contents
- [Top Heading](#top-heading)
  - [Sub Heading](#sub-heading)
    - [Deeper](#deeper)
` + "```" + `

## Rules

1. The block starts with the exact line ` + "`" + `## Table of Contents` + "`" + `.
2. One list item per heading, in document order. Indentation is two spaces
   per heading level above 1 (an H3 item is indented four spaces).
3. Anchors are the heading text lowercased, with spaces replaced by hyphens
   and the characters ` + "`" + `.` + "`" + `, ` + "`" + `(` + "`" + `, ` + "`" + `)` + "`" + ` removed. Duplicate heading
   texts share the same anchor.
4. Placement: the block replaces an existing block in place; otherwise it is
   inserted directly after the first top-level ` + "`" + `# ` + "`" + ` heading, or prepended
   when the file has none.
5. The ` + "`" + `## Table of Contents` + "`" + ` heading itself never appears in the block
   or in INDEX.md.

## INDEX.md

Written at the documentation root. Three sections:

` + "```" + `markdown
# Documentation Index

## Files

### guides/install.md

- [Install](guides/install.md#install)

## Technical Terms

- **file_path**
  - [guides/install.md](guides/install.md)

## Acronyms

- **HTTP**
  - [guides/install.md](guides/install.md)
` + "```" + `

1. ` + "`" + `## Files` + "`" + ` lists every Markdown file (sorted by path) with its
   headings as links. Files without headings still get an empty entry.
2. ` + "`" + `## Technical Terms` + "`" + ` lists camelCase, snake_case, and kebab-case
   identifiers found in document text, each with the files mentioning it.
3. ` + "`" + `## Acronyms` + "`" + ` lists all-caps tokens of two or more letters
   (optionally plural with a trailing ` + "`" + `s` + "`" + `), same layout.
4. Do not edit INDEX.md by hand; it is regenerated on every run.
`
