package waypoint

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/switchback-web/switchback"
	"github.com/switchback-web/switchback/http/resolve"
	"github.com/switchback-web/switchback/http/router"
	"github.com/switchback-web/switchback/logger"
)

// A WaypointOption configures a *Waypoint either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some WaypointOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithLogger is an example of the first.
// An unexported field on the passed in *Waypoint is updated with the enclosed value.
//
// WithRouter is an example of the second.
// An unexported field on the passed in *Waypoint
// is updated only when the closure it returns is called.
type WaypointOption func(wp *Waypoint) (OptFollowup, error)
type OptFollowup func() error

// WithContext exposes the provided context.Context to the switchback app.
func WithContext(ctx context.Context) WaypointOption {
	return func(wp *Waypoint) (OptFollowup, error) {
		wp.ctx = ctx
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using context %T", ctx), nil)
		}

		return nil, nil
	}
}

// WithEnv casts the provided string into a valid Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
// WithEnv then exposes that Environment on the Waypoint.
//
// If both fail, the default Environment is set to Development.
func WithEnv(envVar string) WaypointOption {
	e := switchback.Environment(envVar)
	err := e.Valid()
	if err == nil {
		return func(wp *Waypoint) (OptFollowup, error) {
			wp.env = e
			if setupLog != nil {
				setupLog.Debug(fmt.Sprintf("using env %s", e), nil)
			}

			return nil, nil
		}
	}

	return func(wp *Waypoint) (OptFollowup, error) {
		wp.env = switchback.EnvVarOrEnv(envVar, switchback.Development)
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using env %s", wp.env), nil)
		}

		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the switchback app.
func WithLogger(l logger.Logger) WaypointOption {
	return func(wp *Waypoint) (OptFollowup, error) {
		wp.l = l
		if setupLog == nil {
			setupLog = l
		}

		setupLog.Debug(fmt.Sprintf("using logger %T", l), nil)

		return nil, nil
	}
}

// WithResolver constructs a followup option that, when called,
// exposes the *resolve.Resolver to the switchback app.
func WithResolver(rv *resolve.Resolver) WaypointOption {
	return func(wp *Waypoint) (OptFollowup, error) {
		return func() error {
			wp.Resolver = rv
			if setupLog != nil {
				setupLog.Debug("using resolver", nil)
			}

			return nil
		}, nil
	}
}

// WithRouter constructs a followup option that, when called,
// exposes the *router.Router to the switchback app.
func WithRouter(rt *router.Router) WaypointOption {
	return func(wp *Waypoint) (OptFollowup, error) {
		return func() error {
			if wp.srv == nil {
				wp.srv = defaultServer(wp.ctx)
			}

			wp.Router = rt
			wp.srv.Handler = rt

			if setupLog != nil {
				setupLog.Debug(fmt.Sprintf("using router %T", rt), nil)
				setupLog.Debug(fmt.Sprintf("using server %T", wp.srv), nil)
			}

			return nil
		}, nil
	}
}

// WithServer exposes the *http.Server to the switchback app.
func WithServer(s *http.Server) WaypointOption {
	return func(wp *Waypoint) (OptFollowup, error) {
		old := wp.srv
		wp.srv = s

		if old != nil {
			wp.srv.Handler = old.Handler
		}

		return nil, nil
	}
}

// WithURL parses the provided string into a *url.URL,
// or, reads from the BASE_URL environment variable,
// and exposes the result to the switchback app.
func WithURL(u string) WaypointOption {
	return func(wp *Waypoint) (OptFollowup, error) {
		parsed, err := url.ParseRequestURI(u)
		if err != nil {
			parsed = switchback.EnvVarOrURL(BaseURLEnvVar, defaultBaseURL)
		}

		wp.url = parsed
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using url %s", parsed), nil)
		}

		return nil, nil
	}
}
