package resolve

import "net/http"

// A HandlerFunc produces the value to resolve into an HTTP response.
type HandlerFunc func(r *http.Request) any

// Handler adapts fn into an http.Handler: the value fn returns is resolved,
// forwards are satisfied through the catcher registry, and the resulting
// Response is written to the wire.
func (rv *Resolver) Handler(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rv.Write(w, r, rv.Resolve(fn(r), r))
	})
}
