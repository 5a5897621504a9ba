// Package server wires the handlers into one http.Handler and runs it.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"erp/internal/auth"
	"erp/internal/calendar"
	"erp/internal/config"
	"erp/internal/handlers/acc"
	"erp/internal/handlers/admin"
	"erp/internal/handlers/common"
	"erp/internal/handlers/hr"
	"erp/internal/handlers/pages"
	"erp/internal/handlers/records"
	"erp/internal/handlers/wms"
	"erp/internal/menu"
	"erp/internal/screens"
	"erp/internal/store"
	"erp/internal/web"
	"erp/internal/websocket"
)

// App holds shared dependencies for the application.
type App struct {
	Config   *config.Config
	Store    *store.Store
	Hub      *websocket.Hub
	Auth     *auth.Service
	Menu     *menu.Holder
	Registry *screens.Registry
	Logger   *zap.Logger

	// Clock pins "today". Nil means time.Now.
	Clock calendar.Clock

	common  *common.Handler
	records *records.Handler
	hr      *hr.Handler
	acc     *acc.Handler
	wms     *wms.Handler
	admin   *admin.Handler
	pages   *pages.Handler
}

// New seeds the admin account and any empty screen over st and builds
// every handler. The menu is read from cfg.MenuFile when set.
func New(ctx context.Context, cfg *config.Config, st *store.Store, logger *zap.Logger, clock calendar.Clock) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = time.Now
	}

	tree := menu.Default()
	if cfg.MenuFile != "" {
		t, err := menu.Load(cfg.MenuFile)
		if err != nil {
			return nil, err
		}
		tree = t
	}

	svc := auth.NewService(st.DB)
	if err := svc.SeedAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.DisplayName); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}
	reg := screens.NewRegistry(st, tree)
	seeded, err := reg.SeedMissing(ctx, clock())
	if err != nil {
		return nil, fmt.Errorf("seed screens: %w", err)
	}
	logger.Debug("fixtures loaded", zap.Int("screens", seeded))
	renderer, err := web.New()
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:   cfg,
		Store:    st,
		Hub:      websocket.NewHub(logger.Named("ws")),
		Auth:     svc,
		Menu:     menu.NewHolder(tree),
		Registry: reg,
		Logger:   logger,
		Clock:    clock,
	}
	a.common = &common.Handler{Nav: a.Menu, Registry: reg, Clock: clock}
	a.records = &records.Handler{DB: st.DB, Hub: a.Hub, Registry: reg, Logger: logger, GetUsername: svc.Username}
	a.hr = &hr.Handler{Registry: reg}
	a.acc = &acc.Handler{Registry: reg}
	a.wms = &wms.Handler{Registry: reg}
	a.admin = &admin.Handler{DB: st.DB, Hub: a.Hub, Auth: svc, Registry: reg, Logger: logger, Clock: clock}
	a.pages = &pages.Handler{
		Auth:     svc,
		Menu:     a.Menu,
		Registry: reg,
		Renderer: renderer,
		Company:  cfg.CompanyName,
		Logger:   logger,
		Clock:    clock,
	}
	return a, nil
}

// Handler returns the full middleware chain around the router.
func (a *App) Handler() http.Handler {
	return LoggingMiddleware(a.Logger)(SecurityHeaders(GzipMiddleware(RequireAuth(a.Auth, a.Logger)(a.routes()))))
}

// menuWatcher reloads cfg.MenuFile into the shared tree and moves screens
// to their new paths.
func (a *App) menuWatcher() (*menu.Watcher, error) {
	logger := a.Logger.Named("menu")
	w, err := menu.NewWatcher(a.Config.MenuFile, a.Menu, logger)
	if err != nil {
		return nil, err
	}
	w.OnReload = func(t *menu.Tree) {
		a.Registry.Relocate(t)
		logger.Debug("screen paths refreshed", zap.Int("screens", len(a.Registry.All())))
	}
	return w, nil
}

// Serve runs the HTTP server and the menu watcher until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	if a.Config.MenuFile != "" {
		watcher, err := a.menuWatcher()
		if err != nil {
			return fmt.Errorf("menu watcher: %w", err)
		}
		if err := watcher.Start(ctx); err != nil {
			watcher.Stop()
			return fmt.Errorf("menu watcher: %w", err)
		}
		g.Go(func() error {
			<-ctx.Done()
			watcher.Stop()
			return nil
		})
	}
	g.Go(func() error {
		a.Logger.Info("server starting", zap.String("addr", srv.Addr), zap.Int("screens", len(a.Registry.All())))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		a.Logger.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
