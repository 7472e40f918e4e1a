package index

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mtovey/docindex/internal/parser"
)

// DocRow represents a row in the docs table.
type DocRow struct {
	Path      string
	Title     string
	Checksum  string
	Headings  []parser.Heading
	UpdatedAt time.Time
}

// SearchResult represents one search hit.
type SearchResult struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// TermEntry is one glossary entry: a term and the files mentioning it.
type TermEntry struct {
	Term  string   `json:"term"`
	Files []string `json:"files"`
}

// UpsertDoc inserts or replaces a document, its FTS entry, and its term
// mentions within a transaction.
func (db *DB) UpsertDoc(d DocRow, body string, terms, acronyms []string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	headingsJSON, _ := json.Marshal(d.Headings)

	// Upsert docs table (includes body for fallback search).
	_, err = tx.Exec(`
		INSERT INTO docs (path, title, checksum, headings, body, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			title      = excluded.title,
			checksum   = excluded.checksum,
			headings   = excluded.headings,
			body       = excluded.body,
			updated_at = excluded.updated_at
	`, d.Path, d.Title, d.Checksum, string(headingsJSON), body, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("index: upsert doc: %w", err)
	}

	// FTS upsert (no-op when FTS5 tag is absent).
	if err := ftsUpsert(tx, d.Path, d.Title, body); err != nil {
		return err
	}

	// Replace mentions: delete old then bulk insert per kind.
	_, _ = tx.Exec(`DELETE FROM mentions WHERE path = ?`, d.Path)
	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO mentions (term, kind, path) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("index: prepare mention insert: %w", err)
	}
	defer stmt.Close()
	for _, term := range terms {
		if _, err := stmt.Exec(term, KindTerm, d.Path); err != nil {
			return fmt.Errorf("index: insert mention: %w", err)
		}
	}
	for _, a := range acronyms {
		if _, err := stmt.Exec(a, KindAcronym, d.Path); err != nil {
			return fmt.Errorf("index: insert mention: %w", err)
		}
	}

	return tx.Commit()
}

// DeleteDoc removes a document, its FTS entry, and its mentions.
func (db *DB) DeleteDoc(path string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	ftsDelete(tx, path)
	_, _ = tx.Exec(`DELETE FROM mentions WHERE path = ?`, path)
	_, _ = tx.Exec(`DELETE FROM docs WHERE path = ?`, path)

	return tx.Commit()
}

// GetChecksum returns the stored checksum for a document, or empty string
// if not indexed.
func (db *DB) GetChecksum(path string) (string, error) {
	var cs string
	err := db.conn.QueryRow(`SELECT checksum FROM docs WHERE path = ?`, path).Scan(&cs)
	if err != nil {
		return "", nil // not found is fine
	}
	return cs, nil
}

// GetDoc returns one indexed document, or nil when not indexed.
func (db *DB) GetDoc(path string) (*DocRow, error) {
	var d DocRow
	var headingsJSON string
	err := db.conn.QueryRow(`
		SELECT path, title, checksum, headings, updated_at
		FROM docs WHERE path = ?
	`, path).Scan(&d.Path, &d.Title, &d.Checksum, &headingsJSON, &d.UpdatedAt)
	if err != nil {
		return nil, nil
	}
	if err := json.Unmarshal([]byte(headingsJSON), &d.Headings); err != nil {
		return nil, fmt.Errorf("index: decode headings for %s: %w", path, err)
	}
	return &d, nil
}

// ListDocs returns paginated documents. sort is one of updated_at (default,
// newest first), title, or path.
func (db *DB) ListDocs(limit, offset int, sort string) ([]DocRow, int, error) {
	if limit <= 0 {
		limit = 50
	}
	order := "updated_at DESC"
	switch sort {
	case "title":
		order = "title COLLATE NOCASE ASC"
	case "path":
		order = "path ASC"
	}

	var total int
	if err := db.conn.QueryRow(`SELECT count(*) FROM docs`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("index: count docs: %w", err)
	}

	rows, err := db.conn.Query(`
		SELECT path, title, checksum, headings, updated_at
		FROM docs ORDER BY `+order+` LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("index: list docs: %w", err)
	}
	defer rows.Close()

	var out []DocRow
	for rows.Next() {
		var d DocRow
		var headingsJSON string
		if err := rows.Scan(&d.Path, &d.Title, &d.Checksum, &headingsJSON, &d.UpdatedAt); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal([]byte(headingsJSON), &d.Headings); err != nil {
			return nil, 0, fmt.Errorf("index: decode headings for %s: %w", d.Path, err)
		}
		out = append(out, d)
	}
	return out, total, rows.Err()
}

// Mentions returns the glossary for one kind, terms sorted lexicographically
// with their file sets sorted as well.
func (db *DB) Mentions(kind string) ([]TermEntry, error) {
	rows, err := db.conn.Query(`
		SELECT term, path FROM mentions WHERE kind = ? ORDER BY term, path
	`, kind)
	if err != nil {
		return nil, fmt.Errorf("index: mentions: %w", err)
	}
	defer rows.Close()

	var out []TermEntry
	for rows.Next() {
		var term, path string
		if err := rows.Scan(&term, &path); err != nil {
			return nil, err
		}
		if len(out) == 0 || out[len(out)-1].Term != term {
			out = append(out, TermEntry{Term: term})
		}
		out[len(out)-1].Files = append(out[len(out)-1].Files, path)
	}
	return out, rows.Err()
}

// MentionFiles returns the sorted paths mentioning term with the given kind.
func (db *DB) MentionFiles(term, kind string) ([]string, error) {
	rows, err := db.conn.Query(`
		SELECT path FROM mentions WHERE term = ? AND kind = ? ORDER BY path
	`, term, kind)
	if err != nil {
		return nil, fmt.Errorf("index: mention files: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// AllPaths returns every indexed document path.
func (db *DB) AllPaths() (map[string]struct{}, error) {
	rows, err := db.conn.Query(`SELECT path FROM docs`)
	if err != nil {
		return nil, fmt.Errorf("index: all paths: %w", err)
	}
	defer rows.Close()
	out := make(map[string]struct{})
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out[p] = struct{}{}
	}
	return out, rows.Err()
}

// AllChecksums returns path → checksum for every indexed document.
func (db *DB) AllChecksums() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT path, checksum FROM docs`)
	if err != nil {
		return nil, fmt.Errorf("index: all checksums: %w", err)
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var p, cs string
		if err := rows.Scan(&p, &cs); err != nil {
			return nil, err
		}
		out[p] = cs
	}
	return out, rows.Err()
}
