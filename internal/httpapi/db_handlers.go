package httpapi

import (
	"database/sql"
	"net/http"
)

type DBHandler struct {
	DB *sql.DB
}

// Checkpoint serves POST /api/db/checkpoint.
func (h DBHandler) Checkpoint(w http.ResponseWriter, r *http.Request) {
	if h.DB == nil {
		WriteError(w, r, http.StatusNotFound, "no_database", "no database is configured")
		return
	}
	if _, err := h.DB.ExecContext(r.Context(), `PRAGMA wal_checkpoint(FULL);`); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "checkpoint_failed", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
