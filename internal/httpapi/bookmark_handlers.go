package httpapi

import (
	"context"
	"net/http"

	"jobboard/internal/bookmark"
	"jobboard/internal/detailview"
	"jobboard/internal/events"
	"jobboard/internal/listview"
	"jobboard/internal/logging"
	"jobboard/internal/ui"
)

type BookmarkHandler struct {
	Bookmarks bookmark.Store
	Hub       *events.Hub
}

// clicker is the delegated click entry point of a page view.
type clicker interface {
	Click(ctx context.Context, t ui.Target) (ui.ActionResult, error)
}

// Toggle serves POST /bookmarks/{id}?view=list|details. The request is
// dispatched as a click on a bookmark button inside that view's card
// container.
func (h BookmarkHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	actions := ui.Actions{Bookmarks: h.Bookmarks}
	view := r.URL.Query().Get("view")
	var v clicker
	switch view {
	case "", "list":
		view = "list"
		v = &listview.View{Actions: actions}
	case "details":
		v = &detailview.View{Actions: actions}
	default:
		WriteError(w, r, http.StatusBadRequest, "invalid_view", "view must be list or details")
		return
	}

	target := ui.Target{AriaLabel: "bookmark", Icon: "bookmark", JobID: pathID(r, "/bookmarks/")}
	res, err := v.Click(r.Context(), target)
	if err != nil {
		logging.Component("http").WithField("id", res.ID).WithError(err).Error("bookmark toggle failed")
		WriteError(w, r, http.StatusInternalServerError, "bookmark_failed", "bookmark could not be saved")
		return
	}
	if res.Kind != ui.ActionBookmark {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "job id must be a number")
		return
	}

	out := BookmarkResponse{ID: res.ID, Bookmarked: res.Bookmarked, View: view}
	h.Hub.Emit(RequestIDFrom(r.Context()), events.TypeBookmarkToggled, events.BookmarkToggled{ID: out.ID, Bookmarked: out.Bookmarked})
	WriteJSON(w, http.StatusOK, out)
}
