// Package indexer runs the batch documentation indexing pipeline:
// discover Markdown files, extract headings and terms, rewrite per-file
// tables of contents, and emit the aggregate INDEX.md.
package indexer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mtovey/docindex/internal/parser"
	"github.com/mtovey/docindex/internal/report"
	"github.com/mtovey/docindex/internal/storage"
	"github.com/mtovey/docindex/internal/toc"
)

// Summary describes one completed batch run.
type Summary struct {
	FilesProcessed int `json:"files_processed"`
	TOCsWritten    int `json:"tocs_written"`
	Terms          int `json:"terms"`
	Acronyms       int `json:"acronyms"`
	Errors         int `json:"errors"`
}

// Indexer is the batch pipeline. All state lives in the Report built during
// a run; the Indexer itself carries only collaborators and is safe to reuse
// across runs.
type Indexer struct {
	store     storage.Provider
	logger    *slog.Logger
	indexFile string
}

// New creates a batch indexer writing its aggregate to indexFile at the
// corpus root. An empty indexFile defaults to INDEX.md.
func New(store storage.Provider, logger *slog.Logger, indexFile string) *Indexer {
	if indexFile == "" {
		indexFile = report.IndexFileName
	}
	return &Indexer{store: store, logger: logger, indexFile: indexFile}
}

// Run executes one full pass and returns the run summary together with the
// report it accumulated. Files are processed sequentially; any per-file
// error is logged and counted, never fatal. Cancelling ctx stops between
// files, which may leave some files rewritten and the aggregate index
// stale — the next full run rebuilds it from scratch.
func (ix *Indexer) Run(ctx context.Context) (*Summary, *report.Report, error) {
	metas, err := ix.store.List("")
	if err != nil {
		return nil, nil, fmt.Errorf("indexer: discover: %w", err)
	}
	ix.logger.Info("processing files", slog.Int("count", len(metas)))

	rep := report.New()
	sum := &Summary{}

	for _, m := range metas {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		if err := ix.processFile(m.Path, rep, sum); err != nil {
			sum.Errors++
			ix.logger.Warn("processing failed",
				slog.String("path", m.Path), slog.String("error", err.Error()))
		}
	}

	ix.logger.Info("generating index", slog.String("file", ix.indexFile))
	if err := ix.store.Write(ix.indexFile, rep.Render()); err != nil {
		return nil, nil, fmt.Errorf("indexer: write %s: %w", ix.indexFile, err)
	}

	sum.Terms = len(rep.Terms)
	sum.Acronyms = len(rep.Acronyms)
	ix.logger.Info("run complete",
		slog.Int("files", sum.FilesProcessed),
		slog.Int("tocs_written", sum.TOCsWritten),
		slog.Int("terms", sum.Terms),
		slog.Int("acronyms", sum.Acronyms),
		slog.Int("errors", sum.Errors))
	return sum, rep, nil
}

// processFile reads one file, merges its extraction results into rep, and
// rewrites its TOC in place when it has at least one heading.
func (ix *Indexer) processFile(path string, rep *report.Report, sum *Summary) error {
	data, err := ix.store.Read(path)
	if err != nil {
		return err
	}

	ix.logger.Info("processing", slog.String("path", path))
	doc := parser.ParseDocument(data)
	rep.Add(path, doc)
	sum.FilesProcessed++

	if len(doc.Headings) == 0 {
		return nil
	}

	updated := toc.Rewrite(string(data), doc.Headings)
	if updated == string(data) {
		return nil
	}
	if err := ix.store.Write(path, []byte(updated)); err != nil {
		return err
	}
	sum.TOCsWritten++
	return nil
}
