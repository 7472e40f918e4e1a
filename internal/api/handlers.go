package api

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/mtovey/docindex/internal/apperr"
	"github.com/mtovey/docindex/internal/docservice"
	"github.com/mtovey/docindex/internal/index"
)

// Handler holds API route handlers.
type Handler struct {
	svc *docservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *docservice.Service) *Handler {
	return &Handler{svc: svc}
}

// docPath extracts the document path from the URL (everything after /api/docs/).
// Supports encoded slashes from OpenAPI clients (e.g. guides%2Finstall.md).
func docPath(r *http.Request) string {
	raw := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if raw == "" {
		return ""
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// ListDocs handles GET /api/docs.
//
//	@Summary		List indexed documents with pagination
//	@Tags			docs
//	@Produce		json
//	@Param			limit	query		int		false	"Page size"
//	@Param			offset	query		int		false	"Page offset"
//	@Param			sort	query		string	false	"Sort field"	Enums(updated_at, title, path)
//	@Success		200		{object}	DocListResponse
//	@Security		BearerAuth
//	@Router			/docs [get]
func (h *Handler) ListDocs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	sort := q.Get("sort")

	items, total, err := h.svc.ListDocs(r.Context(), limit, offset, sort)
	if err != nil {
		slog.Error("list docs failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"docs":  items,
		"total": total,
	})
}

// GetDoc handles GET /api/docs/*.
//
//	@Summary		Get a single document by path
//	@Tags			docs
//	@Produce		json
//	@Param			path	path		string	true	"Document path"
//	@Success		200		{object}	DocDetail
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/docs/{path} [get]
func (h *Handler) GetDoc(w http.ResponseWriter, r *http.Request) {
	path := docPath(r)
	if path == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("path is required"))
		return
	}
	doc, err := h.svc.GetDoc(r.Context(), path)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("get doc failed", slog.String("path", path), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// Search handles GET /api/search.
//
//	@Summary		Full-text search across documents
//	@Tags			search
//	@Produce		json
//	@Param			q		query		string	true	"Search query"
//	@Param			limit	query		int		false	"Max results"
//	@Success		200		{object}	SearchResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'q' is required"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	results, err := h.svc.Search(r.Context(), q, limit)
	if err != nil {
		slog.Error("search failed", slog.String("query", q), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"results": results,
	})
}

// Terms handles GET /api/terms.
//
//	@Summary		List technical terms with the files that mention them
//	@Tags			glossary
//	@Produce		json
//	@Success		200	{object}	TermsResponse
//	@Security		BearerAuth
//	@Router			/terms [get]
func (h *Handler) Terms(w http.ResponseWriter, r *http.Request) {
	h.glossary(w, r, index.KindTerm)
}

// Acronyms handles GET /api/acronyms.
//
//	@Summary		List acronyms with the files that mention them
//	@Tags			glossary
//	@Produce		json
//	@Success		200	{object}	TermsResponse
//	@Security		BearerAuth
//	@Router			/acronyms [get]
func (h *Handler) Acronyms(w http.ResponseWriter, r *http.Request) {
	h.glossary(w, r, index.KindAcronym)
}

func (h *Handler) glossary(w http.ResponseWriter, r *http.Request, kind string) {
	entries, err := h.svc.Terms(r.Context(), kind)
	if err != nil {
		slog.Error("glossary failed", slog.String("kind", kind), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if entries == nil {
		entries = []index.TermEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"terms": entries,
	})
}

// Reindex handles POST /api/reindex.
//
//	@Summary		Run a full batch pass: rewrite TOCs, regenerate INDEX.md, resync the index
//	@Tags			index
//	@Produce		json
//	@Success		200	{object}	ReindexResponse
//	@Security		BearerAuth
//	@Router			/reindex [post]
func (h *Handler) Reindex(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Reindex(r.Context())
	if err != nil {
		slog.Error("reindex failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, ReindexResponse{
		FilesProcessed: sum.FilesProcessed,
		TOCsWritten:    sum.TOCsWritten,
		Terms:          sum.Terms,
		Acronyms:       sum.Acronyms,
		Errors:         sum.Errors,
	})
}
