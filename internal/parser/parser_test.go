package parser

import (
	"reflect"
	"testing"
)

func TestExtractHeadings_OrderAndLevels(t *testing.T) {
	input := []byte("# One\n\ntext\n\n## Two\n\n### Three\n\n## Four\n")
	got := ExtractHeadings(input)

	want := []Heading{
		{Level: 1, Text: "One", Anchor: "one"},
		{Level: 2, Text: "Two", Anchor: "two"},
		{Level: 3, Text: "Three", Anchor: "three"},
		{Level: 2, Text: "Four", Anchor: "four"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("headings = %+v, want %+v", got, want)
	}
}

func TestExtractHeadings_NestedMarkupStripped(t *testing.T) {
	input := []byte("## Using *emphasis* and `code` here\n")
	got := ExtractHeadings(input)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Text != "Using emphasis and code here" {
		t.Errorf("text = %q", got[0].Text)
	}
}

func TestExtractHeadings_EntitiesDecoded(t *testing.T) {
	got := ExtractHeadings([]byte("# Tom &amp; Jerry\n"))
	if len(got) != 1 || got[0].Text != "Tom & Jerry" {
		t.Errorf("headings = %+v", got)
	}
}

func TestExtractHeadings_TOCHeadingExcluded(t *testing.T) {
	input := []byte("# Intro\n\n## Table of Contents\n- [Intro](#intro)\n\n## Real Section\n")
	got := ExtractHeadings(input)
	if len(got) != 2 {
		t.Fatalf("headings = %+v, want 2 entries", got)
	}
	if got[0].Text != "Intro" || got[1].Text != "Real Section" {
		t.Errorf("headings = %+v", got)
	}
}

func TestExtractHeadings_Setext(t *testing.T) {
	got := ExtractHeadings([]byte("Title\n=====\n\nSub\n---\n"))
	if len(got) != 2 || got[0].Level != 1 || got[1].Level != 2 {
		t.Errorf("headings = %+v", got)
	}
}

func TestSlug(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Getting Started (Quickly)", "getting-started-quickly"},
		{"Hello World", "hello-world"},
		{"v1.2 Release", "v12-release"},
		{"Already-hyphenated", "already-hyphenated"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Slug(c.in); got != c.want {
			t.Errorf("Slug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSlug_NoDeduplication(t *testing.T) {
	// Repeated headings produce identical anchors; no -1/-2 suffixes.
	a := Slug("Duplicate")
	b := Slug("Duplicate")
	if a != b || a != "duplicate" {
		t.Errorf("slugs = %q, %q", a, b)
	}
}

func TestExtractTerms_Patterns(t *testing.T) {
	input := []byte("HeadingLevel uses file_path and sync-delay settings.")
	terms, _ := ExtractTerms(input)
	want := []string{"HeadingLevel", "file_path", "sync-delay"}
	if !reflect.DeepEqual(terms, want) {
		t.Errorf("terms = %v, want %v", terms, want)
	}
}

func TestExtractTerms_LowerCamelNotMatched(t *testing.T) {
	// camelCaseWord starts lowercase: no branch of the term pattern can
	// match it (there is no word boundary before the interior uppercase).
	terms, _ := ExtractTerms([]byte("a camelCaseWord here"))
	if len(terms) != 0 {
		t.Errorf("terms = %v, want none", terms)
	}
}

func TestExtractTerms_UpperSnakeMatchesNeither(t *testing.T) {
	// PYTHON_SCRIPT has uppercase segments joined by '_': the snake_case
	// branch wants lowercase and the acronym pattern finds no word
	// boundary at the underscore.
	terms, acronyms := ExtractTerms([]byte("run PYTHON_SCRIPT now"))
	if len(terms) != 0 {
		t.Errorf("terms = %v, want none", terms)
	}
	if len(acronyms) != 0 {
		t.Errorf("acronyms = %v, want none", acronyms)
	}
}

func TestExtractTerms_Acronyms(t *testing.T) {
	_, acronyms := ExtractTerms([]byte("HTTP and JSON APIs, but not A."))
	want := []string{"HTTP", "JSON", "APIs"}
	if !reflect.DeepEqual(acronyms, want) {
		t.Errorf("acronyms = %v, want %v", acronyms, want)
	}
}

func TestExtractTerms_CodeBlocksIncluded(t *testing.T) {
	input := []byte("text\n\n```\nsome snake_case in code\n```\n")
	terms, _ := ExtractTerms(input)
	if len(terms) != 1 || terms[0] != "snake_case" {
		t.Errorf("terms = %v, want [snake_case]", terms)
	}
}

func TestParseDocument_Title(t *testing.T) {
	doc := ParseDocument([]byte("## Sub First\n\n# The Title\n"))
	if doc.Title != "The Title" {
		t.Errorf("title = %q", doc.Title)
	}
}

func TestParseDocument_NoHeadings(t *testing.T) {
	doc := ParseDocument([]byte("just prose, no headings at all\n"))
	if len(doc.Headings) != 0 {
		t.Errorf("headings = %+v, want none", doc.Headings)
	}
	if doc.Title != "" {
		t.Errorf("title = %q, want empty", doc.Title)
	}
}
