package resolve

import (
	"fmt"
	"io"
	"net/http"

	"github.com/switchback-web/switchback/logger"
)

const resolverFrames = 0

// Resolver maintains reusable pieces for turning the values handlers return
// into HTTP responses.
//
// Most oftentimes, setting up a single instance of a Resolver suffices for an
// application: one needs only application-wide configuration of the catcher
// registry and the logger failures report to. Our suggestion does not exclude
// creating diverse Resolvers for non-overlapping segments of an application.
//
// Resolution itself is a pure, single pass over the value:
// no retries, no suspension, no state carried across requests.
type Resolver struct {
	logger   logger.Logger
	catchers *Catchers
}

// New constructs a *Resolver using the ResolverOptFns passed in.
func New(opts ...ResolverOptFn) *Resolver {
	rv := new(Resolver)
	for _, opt := range opts {
		opt(rv)
	}

	if rv.logger == nil {
		rv.logger = logger.New()
	}

	if l, ok := rv.logger.(logger.SkipLogger); ok {
		rv.logger = l.AddSkip(resolverFrames)
	}

	if rv.catchers == nil {
		rv.catchers = NewCatchers()
	}

	return rv
}

// Catchers returns the catcher registry the Resolver satisfies forwards with.
func (rv *Resolver) Catchers() *Catchers { return rv.catchers }

// Resolve derives an Outcome from v for the given request.
//
// A value implementing Resolvable decides its own Outcome.
// Otherwise, these built-in behaviors apply:
//
//   - string: fixed plain-text body, status 200
//   - []byte: fixed octet-stream body, status 200
//   - io.Reader: streamed octet-stream body, status 200
//   - nil: forward to the 404 catcher
//   - error: the failure is recorded to the logger and collapsed
//     to a forward to the 500 catcher; its content never reaches the client
//
// Any other shape is unresolvable: it is logged and forwarded to 500.
func (rv *Resolver) Resolve(v any, r *http.Request) Outcome {
	switch t := v.(type) {
	case nil:
		return Forward(http.StatusNotFound)
	case Resolvable:
		return t.Resolve(*rv, r)
	case Outcome:
		return t
	case *Response:
		return Respond(t)
	case string:
		return text([]byte(t))
	case []byte:
		resp := NewResponse(http.StatusOK)
		resp.SetHeader("Content-Type", "application/octet-stream")
		resp.SetBody(t)
		return Respond(resp)
	case error:
		// NOTE: a failure implementing Resolvable never lands here,
		// the Resolvable case above delegated to it already.
		rv.logger.Error(t.Error(), &logger.LogContext{Error: t, Request: r})
		return Forward(http.StatusInternalServerError)
	case io.Reader:
		return Stream{Reader: t}.Resolve(*rv, r)
	default:
		err := fmt.Errorf("%w: %T", ErrUnresolvable, v)
		rv.logger.Error(err.Error(), &logger.LogContext{Error: err, Request: r})
		return Forward(http.StatusInternalServerError)
	}
}

// Write satisfies the Outcome against w.
//
// A formed Response writes itself; a forward is satisfied by the catcher
// registered for its status code.
func (rv *Resolver) Write(w http.ResponseWriter, r *http.Request, out Outcome) error {
	resp := out.Response()
	if code, ok := out.Forwarded(); ok {
		resp = rv.catchers.Catch(code, r)
	}

	if resp == nil {
		err := fmt.Errorf("%w: outcome carries no response", ErrMissingData)
		rv.logger.Error(err.Error(), &logger.LogContext{Error: err, Request: r})
		return err
	}

	if err := resp.Write(w, r); err != nil {
		rv.logger.Error(fmt.Sprintf("writing response: %s", err), &logger.LogContext{Error: err, Request: r})
		return err
	}

	return nil
}

// text forms the fixed plain-text Response around b.
func text(b []byte) Outcome {
	resp := NewResponse(http.StatusOK)
	resp.SetHeader("Content-Type", "text/plain; charset=utf-8")
	resp.SetBody(b)
	return Respond(resp)
}
