package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/switchback-web/switchback"
	"github.com/switchback-web/switchback/http/middleware"
	"github.com/switchback-web/switchback/http/resolve"
)

// A Route maps a path and HTTP method to a [resolve.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Path        string
	Method      string
	Handler     resolve.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests to the resolvable values their handlers produce.
type Router struct {
	Env           switchback.Environment
	everyReqStack []middleware.Adapter
	logReq        middleware.Adapter
	resolver      *resolve.Resolver
	r             *mux.Router
}

// New constructs a [*Router] for the given environment.
//
// Unmatched requests forward to the resolver's 404 catcher;
// requests matching a path but not a method forward to the 405 catcher.
func New(env switchback.Environment, rv *resolve.Resolver, logReq middleware.Adapter) *Router {
	if rv == nil {
		rv = resolve.New()
	}

	if logReq == nil {
		logReq = middleware.NoopAdapter
	}

	r := mux.NewRouter()
	r.NotFoundHandler = rv.Handler(func(*http.Request) any {
		return resolve.Forward(http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = rv.Handler(func(*http.Request) any {
		return resolve.Forward(http.StatusMethodNotAllowed)
	})

	return &Router{Env: env, logReq: logReq, resolver: rv, r: r}
}

// CatchAll sets up a handler for all routes to funnel to for e.g. maintenance mode.
func (r *Router) CatchAll(fn resolve.HandlerFunc) {
	r.r.PathPrefix("/").Handler(
		middleware.Chain(
			middleware.ReportPanic(r.Env)(r.resolver.Handler(fn).ServeHTTP),
			r.everyReqStack...,
		),
	)
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [resolve.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(fn resolve.HandlerFunc) {
	r.r.NotFoundHandler = middleware.Chain(
		middleware.ReportPanic(r.Env)(r.resolver.Handler(fn).ServeHTTP),
		r.logReq,
	)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := append(r.everyReqStack, middlewares...)
		mws = append(mws, route.Middlewares...)
		handler := middleware.Chain(
			middleware.ReportPanic(r.Env)(r.resolver.Handler(route.Handler).ServeHTTP),
			mws...,
		)
		r.r.Handle(route.Path, handler).Methods(route.Method)
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// SubrouterHost constructs a [*Router] that handles requests
// to endpoints matching the host.
func (r *Router) SubrouterHost(host string) *Router {
	return &Router{
		Env:           r.Env,
		everyReqStack: r.everyReqStack,
		logReq:        r.logReq,
		resolver:      r.resolver,
		r:             r.r.Host(host).Subrouter(),
	}
}

// Subrouter constructs a [*Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/api/v1") handles requests to endpoints like /api/v1/users
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		Env:           r.Env,
		everyReqStack: r.everyReqStack,
		logReq:        r.logReq,
		resolver:      r.resolver,
		r:             r.r.PathPrefix(prefix).Subrouter(),
	}
}

// Params retrieves the path variables the router captured for the request.
//
// The returned map is the read-only routing context for resolution;
// it is empty when the matched Route declares no variables.
func Params(r *http.Request) map[string]string {
	return mux.Vars(r)
}
