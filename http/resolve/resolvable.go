package resolve

import "net/http"

// A Resolvable derives the Outcome for an HTTP request from itself.
//
// The request is read-only context - routing variables, headers, deadline -
// and must not be mutated during resolution.
type Resolvable interface {
	Resolve(rv Resolver, r *http.Request) Outcome
}

// An Option is a value that may be absent.
type Option[T any] struct {
	val T
	ok  bool
}

// Some constructs an Option holding val.
func Some[T any](val T) Option[T] { return Option[T]{val: val, ok: true} }

// None constructs an absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the inner value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.val, o.ok }

// Resolve delegates to the inner value when present
// and forwards to the 404 catcher when absent, whatever the inner type.
func (o Option[T]) Resolve(rv Resolver, r *http.Request) Outcome {
	if !o.ok {
		return Forward(http.StatusNotFound)
	}

	return rv.Resolve(o.val, r)
}

// A Result is a success/failure union.
//
// Whichever branch is populated resolves on its own terms:
// resolving a Result holding failure x equals resolving x directly.
// So a failure implementing Resolvable decides its own response,
// while an opaque failure is recorded to the Resolver's logger
// and collapsed to a forward to the 500 catcher.
type Result[T any] struct {
	val T
	err error
	ok  bool
}

// Ok constructs a Result populated on the success branch.
func Ok[T any](val T) Result[T] { return Result[T]{val: val, ok: true} }

// Err constructs a Result populated on the failure branch.
func Err[T any](err error) Result[T] { return Result[T]{err: err} }

// Try folds the conventional (value, error) pair into a Result,
// taking the failure branch whenever err is non-nil.
func Try[T any](val T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}

	return Ok(val)
}

// Get returns the populated branch.
func (res Result[T]) Get() (T, error) { return res.val, res.err }

// Resolve delegates to whichever branch is populated.
func (res Result[T]) Resolve(rv Resolver, r *http.Request) Outcome {
	if res.ok {
		return rv.Resolve(res.val, r)
	}

	return rv.Resolve(res.err, r)
}
