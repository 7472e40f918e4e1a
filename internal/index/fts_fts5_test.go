//go:build sqlite_fts5

package index

import (
	"strings"
	"testing"
	"time"
)

func TestFTS5_TableExists(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM docs_fts`).Scan(&count); err != nil {
		t.Fatalf("docs_fts table missing: %v", err)
	}
}

func TestFTS5_SearchWithSnippet(t *testing.T) {
	db := testDB(t)
	row := DocRow{
		Path:      "fts.md",
		Title:     "Indexing Guide",
		Checksum:  "f1",
		UpdatedAt: time.Now(),
	}
	if err := db.UpsertDoc(row, "The indexer provides powerful full-text search capabilities.", nil, nil); err != nil {
		t.Fatalf("UpsertDoc: %v", err)
	}

	results, err := db.Search("search", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len = %d, want 1", len(results))
	}
	if !strings.Contains(results[0].Snippet, "<b>search</b>") {
		t.Errorf("snippet = %q, want highlighted match", results[0].Snippet)
	}
}

func TestFTS5_DeleteRemovesEntry(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertDoc(DocRow{Path: "gone.md", Checksum: "1", UpdatedAt: time.Now()}, "ephemeral content", nil, nil)
	if err := db.DeleteDoc("gone.md"); err != nil {
		t.Fatalf("DeleteDoc: %v", err)
	}
	results, err := db.Search("ephemeral", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %+v, want none after delete", results)
	}
}
