package httpapi

import (
	"bytes"
	"net"
	"net/http"
	"strconv"
	"strings"

	"jobboard/internal/logging"
	"jobboard/internal/web"
)

func methodMux(m map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := m[r.Method]; ok {
			h(w, r)
			return
		}
		WriteError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	}
}

// localOnly rejects requests that do not come from the loopback interface.
func localOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if host != "127.0.0.1" && host != "::1" && host != "localhost" {
			WriteError(w, r, http.StatusForbidden, "forbidden", "local requests only")
			return
		}
		next(w, r)
	}
}

// pageParam reads ?page=N. Missing or malformed values mean page 1; the
// view clamps anything out of range.
func pageParam(r *http.Request) int {
	n, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("page")))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// pathID returns what follows prefix in the request path.
func pathID(r *http.Request, prefix string) string {
	return strings.Trim(strings.TrimPrefix(r.URL.Path, prefix), "/")
}

func renderPage(w http.ResponseWriter, r *http.Request, rd *web.Renderer, status int, name string, p web.Page) {
	var buf bytes.Buffer
	if err := rd.Render(&buf, name, p); err != nil {
		logging.Component("http").WithField("request_id", RequestIDFrom(r.Context())).WithError(err).Error("render failed")
		WriteError(w, r, http.StatusInternalServerError, "render_failed", "page could not be rendered")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
