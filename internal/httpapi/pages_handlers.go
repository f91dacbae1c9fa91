package httpapi

import (
	"net/http"
	"sync/atomic"

	"jobboard/internal/bookmark"
	"jobboard/internal/config"
	"jobboard/internal/datasource"
	"jobboard/internal/detailview"
	"jobboard/internal/listview"
	"jobboard/internal/ui"
	"jobboard/internal/web"
)

// JobsHandler serves the list and details views as HTML pages and as JSON.
type JobsHandler struct {
	Jobs      *datasource.Service
	Bookmarks bookmark.Store
	Renderer  *web.Renderer
	CfgVal    *atomic.Value // stores config.Config
}

func (h JobsHandler) listView(cfg config.Config, slots listview.Slots) *listview.View {
	return &listview.View{
		Loader:   h.Jobs,
		Source:   cfg.Jobs.Source,
		PageSize: cfg.Jobs.PageSize,
		Slots:    slots,
		Actions:  ui.Actions{Bookmarks: h.Bookmarks},
	}
}

func (h JobsHandler) detailView(cfg config.Config, slots detailview.Slots) *detailview.View {
	return &detailview.View{
		Loader:       h.Jobs,
		Source:       cfg.Jobs.Source,
		RelatedLimit: cfg.Jobs.RelatedLimit,
		SiteName:     cfg.App.SiteName,
		Skills:       detailview.DefaultSkills().WithOverrides(cfg.Skills),
		Slots:        slots,
		Actions:      ui.Actions{Bookmarks: h.Bookmarks},
	}
}

func (h JobsHandler) Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, r, http.StatusNotFound, "not_found", "no such page")
		return
	}
	http.Redirect(w, r, ui.ListHref, http.StatusFound)
}

// Board renders /job-board?page=N. A failed load renders the error panel
// with 503.
func (h JobsHandler) Board(w http.ResponseWriter, r *http.Request) {
	cfg := currentConfig(h.CfgVal)
	page := web.NewListPage(cfg.App.SiteName)

	status := http.StatusOK
	if err := h.listView(cfg, page).Open(r.Context(), pageParam(r)); err != nil {
		status = http.StatusServiceUnavailable
	}
	renderPage(w, r, h.Renderer, status, web.PageJobBoard, page)
}

// Details renders /job-details?id=N. Bad ids, missing jobs and failed loads
// all render the not-found panel with 404.
func (h JobsHandler) Details(w http.ResponseWriter, r *http.Request) {
	cfg := currentConfig(h.CfgVal)
	page := web.NewDetailPage(cfg.App.SiteName)

	status := http.StatusOK
	if err := h.detailView(cfg, page).Open(r.Context(), r.URL.Query().Get("id")); err != nil {
		status = http.StatusNotFound
	}
	renderPage(w, r, h.Renderer, status, web.PageJobDetails, page)
}

// List serves GET /api/jobs?page=N.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	cfg := currentConfig(h.CfgVal)
	var resp ListResponse
	if err := h.listView(cfg, &resp).Open(r.Context(), pageParam(r)); err != nil {
		writeJobsError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, resp)
}

// Get serves GET /api/jobs/{id}.
func (h JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg := currentConfig(h.CfgVal)
	resp := newDetailResponse()
	if err := h.detailView(cfg, resp).Open(r.Context(), pathID(r, "/api/jobs/")); err != nil {
		writeJobsError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, resp)
}
