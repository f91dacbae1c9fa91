package httpapi

import "net/http"

// NewMux registers every route. Handler wraps it with the middleware chain.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Pages and job API
	jh := JobsHandler{Jobs: d.Jobs, Bookmarks: d.Bookmarks, Renderer: d.Renderer, CfgVal: d.CfgVal}
	mux.HandleFunc("/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.Root,
	}))
	mux.HandleFunc("/job-board", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.Board,
	}))
	mux.HandleFunc("/job-details", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.Details,
	}))
	mux.HandleFunc("/api/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))
	mux.HandleFunc("/api/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.Get, // expects /api/jobs/{id}
	}))

	// Bookmarks
	bh := BookmarkHandler{Bookmarks: d.Bookmarks, Hub: d.Hub}
	mux.HandleFunc("/bookmarks/", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: bh.Toggle, // expects /bookmarks/{id}
	}))

	// Forms
	fh := FormsHandler{Renderer: d.Renderer, CfgVal: d.CfgVal}
	for path, h := range map[string]http.HandlerFunc{
		"/contact":  fh.Contact,
		"/register": fh.Register,
		"/login":    fh.Login,
	} {
		mux.HandleFunc(path, methodMux(map[string]http.HandlerFunc{
			http.MethodGet:  h,
			http.MethodPost: h,
		}))
	}

	// Cache and database maintenance, loopback only
	cah := CacheHandler{Jobs: d.Jobs, Hub: d.Hub}
	mux.HandleFunc("/api/cache", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: localOnly(cah.Status),
	}))
	mux.HandleFunc("/api/cache/invalidate", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: localOnly(cah.Invalidate),
	}))
	dbh := DBHandler{DB: d.DB}
	mux.HandleFunc("/api/db/checkpoint", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: localOnly(dbh.Checkpoint),
	}))

	// Config
	ch := ConfigHandler{CfgVal: d.CfgVal, UserCfgPath: d.UserCfgPath}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Validate,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	hh := HealthHandler{Jobs: d.Jobs, DB: d.DB}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	return mux
}

// Handler is the mux behind the standard middleware chain.
func Handler(d Deps) http.Handler {
	return Chain(NewMux(d), RequestID, AccessLog, Recover, Cors)
}
