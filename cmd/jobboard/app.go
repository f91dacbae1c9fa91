package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"jobboard/internal/bookmark"
	"jobboard/internal/config"
	"jobboard/internal/datasource"
	"jobboard/internal/logging"
	"jobboard/internal/store"
)

const (
	dataDirEnv = "JOBBOARD_DATA_DIR"
	skillsFile = "skills.yml"
	dbFile     = "jobboard.db"
)

// app is the loaded runtime state shared by the commands.
type app struct {
	dataDir string
	cfgPath string
	cfg     config.Config
	cfgVal  atomic.Value // stores config.Config
}

// bootstrap resolves the data dir, ensures it has a config file, and loads it
// with the skills overlay applied. The result is not validated.
func bootstrap(opts *rootOptions) (*app, error) {
	dataDir := opts.dataDir
	if dataDir == "" {
		dataDir = os.Getenv(dataDirEnv)
	}
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	cfgPath, err := config.EnsureUserConfig(dataDir, opts.defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("config bootstrap failed: %w", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("config load failed (%s): %w", cfgPath, err)
	}
	if err := config.OverlaySkills(&cfg, filepath.Join(dataDir, skillsFile)); err != nil {
		return nil, fmt.Errorf("skills overlay: %w", err)
	}

	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format, nil); err != nil {
		_ = logging.Setup("info", cfg.Log.Format, nil)
	}

	return &app{dataDir: dataDir, cfgPath: cfgPath, cfg: cfg}, nil
}

// validate normalizes the loaded config, failing on errors and logging
// warnings, and publishes it to cfgVal.
func (a *app) validate() error {
	cfg, vr := config.NormalizeAndValidate(a.cfg)
	for _, w := range vr.Warnings {
		logging.Component("config").WithField("path", a.cfgPath).Warn(w)
	}
	if err := config.Validate(a.cfg); err != nil {
		return err
	}
	a.cfg = cfg
	a.cfgVal.Store(cfg)
	return nil
}

// stateDir is where the database and lock file live.
func (a *app) stateDir() string {
	dir := a.cfg.App.DataDir
	if dir == "" {
		return a.dataDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(a.dataDir, dir)
}

func (a *app) jobService() *datasource.Service {
	up := a.cfg.Upstream
	t := datasource.RouterTransport{
		HTTP: datasource.NewHTTPTransport(
			time.Duration(up.TimeoutSeconds)*time.Second,
			datasource.NewHostLimiter(up.RequestsPerSec, up.Burst),
		),
		File: datasource.FileTransport{Root: a.dataDir},
	}
	return datasource.New(t, datasource.Options{TTL: time.Duration(a.cfg.Cache.TTLSeconds) * time.Second})
}

// openBookmarks returns the configured bookmark backend. db is nil for the
// noop backend.
func (a *app) openBookmarks() (bookmark.Store, *store.DB, error) {
	if a.cfg.Bookmarks.Backend != "sqlite" {
		return bookmark.Noop{}, nil, nil
	}
	dir := a.stateDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}
	db, err := store.Open(filepath.Join(dir, dbFile))
	if err != nil {
		return nil, nil, fmt.Errorf("open bookmarks db: %w", err)
	}
	return bookmark.NewKVStore(db.Pool), db, nil
}
