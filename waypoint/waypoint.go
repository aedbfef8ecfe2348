package waypoint

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	// TODO: configurable env files
	_ "github.com/joho/godotenv/autoload"
	"github.com/switchback-web/switchback"
	"github.com/switchback-web/switchback/http/resolve"
	"github.com/switchback-web/switchback/http/router"
	"github.com/switchback-web/switchback/logger"
)

// setupLog reports configuration progress while a *Waypoint is under construction.
var setupLog logger.Logger

// A Waypoint manages and exposes all components of a switchback app to one another.
type Waypoint struct {
	*resolve.Resolver
	*router.Router

	ctx context.Context
	env switchback.Environment
	l   logger.Logger
	srv *http.Server
	url *url.URL
}

// New constructs a Waypoint from the provided options.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
func New(opts ...WaypointOption) (*Waypoint, error) {
	wp := new(Waypoint)
	followups := make([]OptFollowup, 0)

	// NOTE: calling an option configures the *Waypoint under construction.
	// Some options require data from other options.
	// These options, therefore, must delay configuring the *Waypoint
	// until either (1) user supplied WaypointOptions or (2) default WaypointOptions
	// configure the *Waypoint first.
	// They return an OptFollowup to be called after the initial set of options are run.
	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(wp)
		if err != nil {
			return wp, fmt.Errorf("%w: %s", switchback.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", switchback.ErrBadConfig, err)
		}
	}

	return wp, nil
}

func (wp *Waypoint) EmitEnv() switchback.Environment { return wp.env }
func (wp *Waypoint) EmitLogger() logger.Logger       { return wp.l }

// Serve begins the web server.
//
// These, and (*Waypoint).Shutdown, stop Serve:
//
// - os.Interrupt
// - os.Kill
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (wp *Waypoint) Serve() error {
	var cancel context.CancelFunc
	wp.ctx, cancel = context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		os.Kill,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)

	go func() {
		s := <-ch
		wp.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
		cancel()
	}()

	go func() {
		wp.l.Info(fmt.Sprintf("running web server at %s", wp.srv.Addr), nil)
		wp.srv.Handler = wp.Router
		if err := wp.srv.ListenAndServe(); err != http.ErrServerClosed {
			err = fmt.Errorf("could not listen: %w", err)
			wp.l.Error(err.Error(), nil)
		}
	}()

	<-wp.ctx.Done()
	return wp.Shutdown()
}

// Shutdown shutdowns the web server.
func (wp *Waypoint) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wp.l.Info("shutting down web server", nil)
	err := wp.srv.Shutdown(shutdownCtx)
	if err == http.ErrServerClosed {
		wp.l.Info("web server shutdown successfully", nil)
		return nil
	}

	if err != nil {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	wp.l.Info("web server shutdown successfully", nil)
	return nil
}
