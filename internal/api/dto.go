package api

import (
	"github.com/mtovey/docindex/internal/docservice"
)

// DocDetail is the full document response type (aliased from the domain layer).
type DocDetail = docservice.DocDetail

// DocListItem is a lightweight item in a list response (aliased from the domain layer).
type DocListItem = docservice.DocListItem

// DocListResponse wraps paginated document listings.
type DocListResponse struct {
	Docs  []DocListItem `json:"docs" validate:"required"`
	Total int           `json:"total" example:"42" validate:"required"`
}

// SearchResult is a single search hit in the API response.
type SearchResult struct {
	Path    string `json:"path" example:"guides/install.md" validate:"required"`
	Title   string `json:"title" example:"Installation" validate:"required"`
	Snippet string `json:"snippet" example:"...matched text..." validate:"required"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []SearchResult `json:"results" validate:"required"`
}

// TermEntry is one glossary entry with the files that mention it.
type TermEntry struct {
	Term  string   `json:"term" example:"file_path" validate:"required"`
	Files []string `json:"files" validate:"required"`
}

// TermsResponse wraps the term (or acronym) glossary.
type TermsResponse struct {
	Terms []TermEntry `json:"terms" validate:"required"`
}

// ReindexResponse reports the outcome of a batch reindex run.
type ReindexResponse struct {
	FilesProcessed int `json:"files_processed" example:"12" validate:"required"`
	TOCsWritten    int `json:"tocs_written" example:"9" validate:"required"`
	Terms          int `json:"terms" example:"31" validate:"required"`
	Acronyms       int `json:"acronyms" example:"7" validate:"required"`
	Errors         int `json:"errors" example:"0" validate:"required"`
}
