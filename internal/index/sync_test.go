package index

import (
	"io"
	"log/slog"
	"testing"

	"github.com/mtovey/docindex/internal/storage"
)

func syncTestEnv(t *testing.T) (storage.Provider, *DB, *slog.Logger) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return store, testDB(t), slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSync_IndexesNewFiles(t *testing.T) {
	store, db, logger := syncTestEnv(t)
	_ = store.Write("a.md", []byte("# Alpha\n\nUses snake_case and HTTP.\n"))

	if err := Sync(db, store, logger); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	doc, _ := db.GetDoc("a.md")
	if doc == nil {
		t.Fatal("a.md not indexed")
	}
	if doc.Title != "Alpha" {
		t.Errorf("title = %q", doc.Title)
	}
	files, _ := db.MentionFiles("snake_case", KindTerm)
	if len(files) != 1 {
		t.Errorf("term mention missing: %v", files)
	}
	files, _ = db.MentionFiles("HTTP", KindAcronym)
	if len(files) != 1 {
		t.Errorf("acronym mention missing: %v", files)
	}
}

func TestSync_SkipsUnchanged(t *testing.T) {
	store, db, logger := syncTestEnv(t)
	_ = store.Write("a.md", []byte("# A\n"))
	if err := Sync(db, store, logger); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	before, _ := db.GetDoc("a.md")

	if err := Sync(db, store, logger); err != nil {
		t.Fatalf("second sync: %v", err)
	}
	after, _ := db.GetDoc("a.md")
	if !after.UpdatedAt.Equal(before.UpdatedAt) {
		t.Error("unchanged file was re-indexed")
	}
}

func TestSync_RemovesStale(t *testing.T) {
	store, db, logger := syncTestEnv(t)
	_ = store.Write("gone.md", []byte("# Gone\n"))
	_ = Sync(db, store, logger)
	_ = store.Delete("gone.md")

	if err := Sync(db, store, logger); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	cs, _ := db.GetChecksum("gone.md")
	if cs != "" {
		t.Errorf("stale entry not removed, checksum = %q", cs)
	}
}
