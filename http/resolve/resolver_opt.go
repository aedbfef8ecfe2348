package resolve

import "github.com/switchback-web/switchback/logger"

// A ResolverOptFn mutates the provided *Resolver in some way.
// A ResolverOptFn is used when constructing a new Resolver.
type ResolverOptFn func(*Resolver)

// WithCatcher registers fn for code on the Resolver's catcher registry,
// initializing the registry if need be.
func WithCatcher(code int, fn Catcher) func(*Resolver) {
	return func(rv *Resolver) {
		if rv.catchers == nil {
			rv.catchers = NewCatchers()
		}

		rv.catchers.Register(code, fn)
	}
}

// WithCatchers sets the provided *Catchers as the registry forwards are
// satisfied with.
func WithCatchers(c *Catchers) func(*Resolver) {
	return func(rv *Resolver) {
		rv.catchers = c
	}
}

// WithLogger sets the provided implementation of Logger in order to log all
// statements through it.
//
// If no Logger is provided through this option, a default logger is
// configured.
func WithLogger(log logger.Logger) func(*Resolver) {
	return func(rv *Resolver) {
		rv.logger = log
	}
}
