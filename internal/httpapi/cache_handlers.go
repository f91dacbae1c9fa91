package httpapi

import (
	"net/http"
	"strings"

	"jobboard/internal/datasource"
	"jobboard/internal/events"
)

type CacheHandler struct {
	Jobs *datasource.Service
	Hub  *events.Hub
}

// Status serves GET /api/cache.
func (h CacheHandler) Status(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"entries": h.Jobs.Entries()})
}

// Invalidate serves POST /api/cache/invalidate[?path=P]. Without a path
// every entry is dropped.
func (h CacheHandler) Invalidate(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSpace(r.URL.Query().Get("path"))
	if path == "" {
		h.Jobs.InvalidateAll()
	} else {
		h.Jobs.Invalidate(path)
	}
	h.Hub.Emit(RequestIDFrom(r.Context()), events.TypeCacheInvalidated, events.CacheInvalidated{Path: path})
	WriteJSON(w, http.StatusOK, map[string]any{"entries": h.Jobs.Entries()})
}
