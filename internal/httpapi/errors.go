package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"jobboard/internal/domain"
	"jobboard/internal/listview"
	"jobboard/internal/logging"
)

// ErrorBody is the payload of every JSON error response.
type ErrorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
	RequestID string `json:"request_id,omitempty"`
}

type APIError struct {
	Error ErrorBody `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the error envelope. Server-side failures are also logged
// under the request id so the envelope can be traced back.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	body := ErrorBody{Code: code, Message: message, Status: status, RequestID: RequestIDFrom(r.Context())}
	if status >= http.StatusInternalServerError {
		logging.Component("http").WithFields(logrus.Fields{
			"request_id": body.RequestID,
			"status":     status,
			"code":       code,
			"path":       r.URL.Path,
		}).Warn(message)
	}
	WriteJSON(w, status, APIError{Error: body})
}

// writeJobsError maps a view's load outcome to a status: a missing record is
// 404, anything else means the jobs source is unavailable.
func writeJobsError(w http.ResponseWriter, r *http.Request, err error) {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		WriteError(w, r, http.StatusNotFound, "not_found", nf.Error())
		return
	}
	WriteError(w, r, http.StatusServiceUnavailable, "jobs_unavailable", listview.ErrorMessage)
}
