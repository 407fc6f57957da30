package app

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/aghadi/aghadi-api/pkg/cl/logger"
	"github.com/go-chi/chi/v5"
)

// Startable is implemented by components that need work done at startup.
type Startable interface {
	Start(context.Context) error
}

// Stoppable is implemented by components that release resources at shutdown.
type Stoppable interface {
	Stop(context.Context) error
}

// RouteRegistrar is implemented by components that mount HTTP routes.
type RouteRegistrar interface {
	RegisterRoutes(chi.Router)
}

// App runs a set of components: starts them in order, mounts their routes,
// serves HTTP and stops them in reverse order.
type App struct {
	router     chi.Router
	log        logger.Logger
	starts     []func(context.Context) error
	stops      []func(context.Context) error
	registrars []RouteRegistrar
	started    int

	mu  sync.Mutex
	srv *http.Server
}

// New inspects each component for Startable, Stoppable and RouteRegistrar.
func New(router chi.Router, log logger.Logger, comps ...any) *App {
	a := &App{router: router, log: log}
	for _, c := range comps {
		if rr, ok := c.(RouteRegistrar); ok {
			a.registrars = append(a.registrars, rr)
		}
		var start, stop func(context.Context) error
		if s, ok := c.(Startable); ok {
			start = s.Start
		}
		if st, ok := c.(Stoppable); ok {
			stop = st.Stop
		}
		if start == nil && stop == nil {
			continue
		}
		a.starts = append(a.starts, start)
		a.stops = append(a.stops, stop)
	}
	return a
}

// Start runs start functions in order. If one fails, the components
// already started are stopped in reverse order and the error is returned.
// Routes are registered only after every component started.
func (a *App) Start(ctx context.Context) error {
	for i, start := range a.starts {
		if start != nil {
			if err := start(ctx); err != nil {
				a.log.Errorf("error starting component #%d: %v", i, err)
				a.stopFrom(context.Background(), i-1)
				return err
			}
		}
		a.started = i + 1
	}

	for _, rr := range a.registrars {
		rr.RegisterRoutes(a.router)
	}
	return nil
}

// Serve listens on addr and blocks until the server is shut down.
func (a *App) Serve(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.mu.Lock()
	a.srv = srv
	a.mu.Unlock()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests, drains in-flight ones and stops all started components.
func (a *App) Shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	a.mu.Lock()
	srv := a.srv
	a.mu.Unlock()

	if srv != nil {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.log.Errorf("server shutdown failed: %v", err)
		}
	}
	a.stopFrom(shutdownCtx, a.started-1)
	a.started = 0
}

func (a *App) stopFrom(ctx context.Context, last int) {
	for i := last; i >= 0; i-- {
		if a.stops[i] == nil {
			continue
		}
		if err := a.stops[i](ctx); err != nil {
			a.log.Errorf("error stopping component #%d: %v", i, err)
		}
	}
}
