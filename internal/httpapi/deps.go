package httpapi

import (
	"database/sql"
	"sync/atomic"

	"jobboard/internal/bookmark"
	"jobboard/internal/config"
	"jobboard/internal/datasource"
	"jobboard/internal/events"
	"jobboard/internal/web"
)

type Deps struct {
	Jobs      *datasource.Service
	Bookmarks bookmark.Store // nil means bookmark.Noop
	Hub       *events.Hub
	Renderer  *web.Renderer

	// DB is the kv store; nil when bookmarks use the noop backend.
	DB *sql.DB

	// Atomic stores
	CfgVal *atomic.Value // stores config.Config

	UserCfgPath string
}

func currentConfig(v *atomic.Value) config.Config {
	if v == nil {
		return config.Default()
	}
	cfg, ok := v.Load().(config.Config)
	if !ok {
		return config.Default()
	}
	return cfg
}
