// Package docservice coordinates storage, index, and batch indexing for
// the read-only consumers (HTTP API, MCP server).
package docservice

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/mtovey/docindex/internal/apperr"
	"github.com/mtovey/docindex/internal/checksum"
	"github.com/mtovey/docindex/internal/index"
	"github.com/mtovey/docindex/internal/indexer"
	"github.com/mtovey/docindex/internal/parser"
	"github.com/mtovey/docindex/internal/storage"
)

// DocDetail is the full representation of a document.
type DocDetail struct {
	Path      string           `json:"path"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Checksum  string           `json:"checksum"`
	Headings  []parser.Heading `json:"headings"`
	Terms     []string         `json:"terms"`
	Acronyms  []string         `json:"acronyms"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// DocListItem is a lightweight item in a list response.
type DocListItem struct {
	Path      string    `json:"path"`
	Title     string    `json:"title"`
	Checksum  string    `json:"checksum"`
	Headings  int       `json:"headings"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Service coordinates storage and index operations.
type Service struct {
	store  storage.Provider
	db     *index.DB
	ix     *indexer.Indexer
	logger *slog.Logger
}

// NewService creates a new document service.
func NewService(store storage.Provider, db *index.DB, ix *indexer.Indexer, logger *slog.Logger) *Service {
	return &Service{store: store, db: db, ix: ix, logger: logger}
}

// GetDoc reads a document from storage and parses it on the fly.
func (s *Service) GetDoc(_ context.Context, path string) (*DocDetail, error) {
	data, err := s.store.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	doc := parser.ParseDocument(data)
	return &DocDetail{
		Path:      path,
		Title:     doc.Title,
		Content:   string(data),
		Checksum:  checksum.Sum(data),
		Headings:  nonNilSlice(doc.Headings),
		Terms:     dedupe(doc.Terms),
		Acronyms:  dedupe(doc.Acronyms),
		UpdatedAt: time.Now(),
	}, nil
}

// ListDocs returns paginated documents from the index.
func (s *Service) ListDocs(_ context.Context, limit, offset int, sort string) ([]DocListItem, int, error) {
	rows, total, err := s.db.ListDocs(limit, offset, sort)
	if err != nil {
		return nil, 0, err
	}
	items := make([]DocListItem, len(rows))
	for i, r := range rows {
		items[i] = DocListItem{
			Path:      r.Path,
			Title:     r.Title,
			Checksum:  r.Checksum,
			Headings:  len(r.Headings),
			UpdatedAt: r.UpdatedAt,
		}
	}
	return items, total, nil
}

// Search delegates full-text search to the index.
func (s *Service) Search(_ context.Context, query string, limit int) ([]index.SearchResult, error) {
	return s.db.Search(query, limit)
}

// Terms returns the glossary for one mention kind.
func (s *Service) Terms(_ context.Context, kind string) ([]index.TermEntry, error) {
	return s.db.Mentions(kind)
}

// Reindex runs a full batch pass (TOC rewrite + INDEX.md) and then brings
// the SQLite index up to date with the rewritten files.
func (s *Service) Reindex(ctx context.Context) (*indexer.Summary, error) {
	sum, _, err := s.ix.Run(ctx)
	if err != nil {
		return nil, err
	}
	if err := index.Sync(s.db, s.store, s.logger); err != nil {
		return nil, err
	}
	return sum, nil
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// dedupe collapses repeated matches, preserving first-seen order.
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
