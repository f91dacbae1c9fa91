package httpapi

import (
	"database/sql"
	"net/http"

	"jobboard/internal/datasource"
)

type HealthHandler struct {
	Jobs *datasource.Service
	DB   *sql.DB
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	out := map[string]any{"ok": true, "cached": len(h.Jobs.Entries())}
	if h.DB != nil {
		if err := h.DB.PingContext(r.Context()); err != nil {
			out["ok"] = false
			out["db"] = err.Error()
			WriteJSON(w, http.StatusServiceUnavailable, out)
			return
		}
		out["db"] = "ok"
	}
	WriteJSON(w, http.StatusOK, out)
}
