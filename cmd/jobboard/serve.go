package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"jobboard/internal/events"
	"jobboard/internal/httpapi"
	"jobboard/internal/logging"
	"jobboard/internal/scheduler"
	"jobboard/internal/store"
	"jobboard/internal/web"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Args:  cobra.NoArgs,
		Short: "Run the job board web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(opts)
			if err != nil {
				return err
			}
			if addr != "" {
				a.cfg.App.Addr = addr
			}
			if err := a.validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), a)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides app.addr)")
	return cmd
}

func serve(ctx context.Context, a *app) error {
	log := logging.Component("serve")
	cfg := a.cfg

	if err := os.MkdirAll(a.stateDir(), 0o755); err != nil {
		return err
	}
	lock, err := store.LockDataDir(a.stateDir())
	if err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	bookmarks, db, err := a.openBookmarks()
	if err != nil {
		return err
	}
	defer db.Close()

	renderer, err := web.New(cfg.App.SiteName)
	if err != nil {
		return err
	}

	jobs := a.jobService()
	hub := events.NewHub()
	deps := httpapi.Deps{
		Jobs:        jobs,
		Bookmarks:   bookmarks,
		Hub:         hub,
		Renderer:    renderer,
		CfgVal:      &a.cfgVal,
		UserCfgPath: a.cfgPath,
	}
	if db != nil {
		deps.DB = db.Pool
	}

	ln, err := net.Listen("tcp", cfg.App.Addr)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	srv := &http.Server{
		Handler:           httpapi.Handler(deps),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return gctx },
	}

	g.Go(func() error {
		log.WithFields(logrus.Fields{
			"addr":      "http://" + ln.Addr().String(),
			"source":    cfg.Jobs.Source,
			"bookmarks": cfg.Bookmarks.Backend,
		}).Info("listening")
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.Cache.RefreshSeconds > 0 {
		every := time.Duration(cfg.Cache.RefreshSeconds) * time.Second
		g.Go(func() error {
			scheduler.RefreshJobs(gctx, every, jobs, cfg.Jobs.Source, hub)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
