package waypoint

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/switchback-web/switchback"
	"github.com/switchback-web/switchback/http/middleware"
	"github.com/switchback-web/switchback/http/resolve"
	"github.com/switchback-web/switchback/http/router"
	"github.com/switchback-web/switchback/logger"
)

const (
	// Base URL defaults
	BaseURLEnvVar = "BASE_URL"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"
	defaultLogLvl  = "INFO"

	// Web server defaults
	DefaultHost               = "localhost"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second
)

var defaultBaseURL = "http://" + DefaultHost + DefaultPort

// defaultOpts constructs the set of WaypointOptions applied before
// those the caller passes to New.
func defaultOpts() []WaypointOption {
	env := switchback.EnvVarOrEnv(environmentEnvVar, switchback.Development)
	l := defaultLogger(env)
	rv := defaultResolver(l)

	return []WaypointOption{
		WithEnv(env.String()),
		WithLogger(l),
		WithURL(switchback.EnvVarOrString(BaseURLEnvVar, defaultBaseURL)),
		WithResolver(rv),
		WithRouter(defaultRouter(env, rv, l)),
	}
}

// defaultLogger constructs a logger.Logger configured for use in the application.
func defaultLogger(env switchback.Environment) logger.Logger {
	ll := logger.NewLogLevel(switchback.EnvVarOrString(logLevelEnvVar, defaultLogLvl))
	if ll == logger.LogLevelUnk {
		ll = logger.NewLogLevel(defaultLogLvl)
	}

	l := logger.New(logger.WithEnv(env.String()), logger.WithLevel(ll))
	l.Debug("setting up app logger", nil)

	return l
}

// defaultResolver constructs a *resolve.Resolver reporting failures to l.
func defaultResolver(l logger.Logger) *resolve.Resolver {
	return resolve.New(resolve.WithLogger(l))
}

// defaultRouter constructs a *router.Router with the middleware stack
// every application wants: panic reporting is attached per-route by the
// router itself, the rest runs on every request.
func defaultRouter(env switchback.Environment, rv *resolve.Resolver, l logger.Logger) *router.Router {
	rt := router.New(env, rv, middleware.LogRequest(l))
	if env.IsProduction() {
		rt.OnEveryRequest(middleware.ForceHTTPS(env))
	}
	rt.OnEveryRequest(
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(l),
	)

	return rt
}

// defaultServer constructs a default *http.Server.
func defaultServer(ctx context.Context) *http.Server {
	port := switchback.EnvVarOrString(portEnvVar, DefaultPort)
	if port[0] != ':' {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		IdleTimeout:  switchback.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  switchback.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: switchback.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}
