package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mtovey/docindex/internal/docservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *docservice.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Documents (read-only; files are edited on disk, not over the API).
	r.Get("/docs", h.ListDocs)
	r.Get("/docs/*", h.GetDoc)

	// Search.
	r.Get("/search", h.Search)

	// Glossaries.
	r.Get("/terms", h.Terms)
	r.Get("/acronyms", h.Acronyms)

	// Batch reindex.
	r.Post("/reindex", h.Reindex)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
