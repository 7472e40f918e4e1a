package index

import (
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/mtovey/docindex/internal/parser"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "docindex-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSchemaCreation(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM docs`).Scan(&count); err != nil {
		t.Fatalf("docs table missing: %v", err)
	}
	if err := db.conn.QueryRow(`SELECT count(*) FROM mentions`).Scan(&count); err != nil {
		t.Fatalf("mentions table missing: %v", err)
	}
}

func TestUpsertAndGetChecksum(t *testing.T) {
	db := testDB(t)
	row := DocRow{
		Path:      "hello.md",
		Title:     "Hello World",
		Checksum:  "abc123",
		Headings:  []parser.Heading{{Level: 1, Text: "Hello World", Anchor: "hello-world"}},
		UpdatedAt: time.Now(),
	}
	if err := db.UpsertDoc(row, "# Hello World\nbody", []string{"hello_world"}, []string{"SQL"}); err != nil {
		t.Fatalf("UpsertDoc: %v", err)
	}
	cs, err := db.GetChecksum("hello.md")
	if err != nil {
		t.Fatalf("GetChecksum: %v", err)
	}
	if cs != "abc123" {
		t.Errorf("checksum = %q, want %q", cs, "abc123")
	}
}

func TestGetDoc_HeadingsRoundtrip(t *testing.T) {
	db := testDB(t)
	headings := []parser.Heading{
		{Level: 1, Text: "Intro", Anchor: "intro"},
		{Level: 2, Text: "Setup", Anchor: "setup"},
	}
	_ = db.UpsertDoc(DocRow{Path: "doc.md", Title: "Intro", Checksum: "1", Headings: headings, UpdatedAt: time.Now()}, "body", nil, nil)

	got, err := db.GetDoc("doc.md")
	if err != nil {
		t.Fatalf("GetDoc: %v", err)
	}
	if got == nil {
		t.Fatal("GetDoc returned nil for indexed doc")
	}
	if !reflect.DeepEqual(got.Headings, headings) {
		t.Errorf("headings = %+v, want %+v", got.Headings, headings)
	}
}

func TestGetDoc_NotFound(t *testing.T) {
	db := testDB(t)
	got, err := db.GetDoc("nope.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("got = %+v, want nil", got)
	}
}

func TestMentions_GroupedAndSorted(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	_ = db.UpsertDoc(DocRow{Path: "b.md", Checksum: "1", UpdatedAt: now}, "body", []string{"zeta_term", "alpha_term"}, []string{"API"})
	_ = db.UpsertDoc(DocRow{Path: "a.md", Checksum: "2", UpdatedAt: now}, "body", []string{"alpha_term"}, nil)

	entries, err := db.Mentions(KindTerm)
	if err != nil {
		t.Fatalf("Mentions: %v", err)
	}
	want := []TermEntry{
		{Term: "alpha_term", Files: []string{"a.md", "b.md"}},
		{Term: "zeta_term", Files: []string{"b.md"}},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %+v, want %+v", entries, want)
	}

	acr, err := db.Mentions(KindAcronym)
	if err != nil {
		t.Fatalf("Mentions acronym: %v", err)
	}
	if len(acr) != 1 || acr[0].Term != "API" {
		t.Errorf("acronym entries = %+v", acr)
	}
}

func TestMentionFiles(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertDoc(DocRow{Path: "x.md", Checksum: "1", UpdatedAt: time.Now()}, "body", []string{"shared_term"}, nil)

	files, err := db.MentionFiles("shared_term", KindTerm)
	if err != nil {
		t.Fatalf("MentionFiles: %v", err)
	}
	if !reflect.DeepEqual(files, []string{"x.md"}) {
		t.Errorf("files = %v", files)
	}
}

func TestDeleteDoc(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertDoc(DocRow{Path: "del.md", Checksum: "x", UpdatedAt: time.Now()}, "body", []string{"gone_term"}, nil)

	if err := db.DeleteDoc("del.md"); err != nil {
		t.Fatalf("DeleteDoc: %v", err)
	}
	cs, _ := db.GetChecksum("del.md")
	if cs != "" {
		t.Errorf("deleted doc still has checksum %q", cs)
	}
	files, _ := db.MentionFiles("gone_term", KindTerm)
	if len(files) != 0 {
		t.Errorf("mentions not cleaned up: %v", files)
	}
}

func TestUpsertReplacesMentions(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	_ = db.UpsertDoc(DocRow{Path: "up.md", Checksum: "1", UpdatedAt: now}, "old", []string{"old_term"}, nil)
	_ = db.UpsertDoc(DocRow{Path: "up.md", Checksum: "2", UpdatedAt: now}, "new", []string{"new_term"}, nil)

	old, _ := db.MentionFiles("old_term", KindTerm)
	if len(old) != 0 {
		t.Error("old mention should be removed on upsert")
	}
	fresh, _ := db.MentionFiles("new_term", KindTerm)
	if len(fresh) != 1 {
		t.Error("new mention should exist")
	}
}

func TestListDocs(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	_ = db.UpsertDoc(DocRow{Path: "b.md", Title: "Bravo", Checksum: "1", UpdatedAt: now}, "b", nil, nil)
	_ = db.UpsertDoc(DocRow{Path: "a.md", Title: "Alpha", Checksum: "2", UpdatedAt: now}, "a", nil, nil)

	docs, total, err := db.ListDocs(10, 0, "path")
	if err != nil {
		t.Fatalf("ListDocs: %v", err)
	}
	if total != 2 || len(docs) != 2 {
		t.Fatalf("total = %d, len = %d", total, len(docs))
	}
	if docs[0].Path != "a.md" {
		t.Errorf("sort by path failed: %+v", docs)
	}
}

func TestSearch_Basic(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertDoc(DocRow{Path: "s.md", Title: "Search Me", Checksum: "1", UpdatedAt: time.Now()}, "uniqueword appears here", nil, nil)

	results, err := db.Search("uniqueword", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Path != "s.md" {
		t.Errorf("search results = %+v, want 1 hit for s.md", results)
	}
}
