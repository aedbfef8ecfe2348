package resolve

import "net/http"

// A Headered composes an inner resolvable value with header overrides.
//
// The inner value resolves first; each override then replaces the same-name
// inner header, leaving headers not overridden untouched. A forward passes
// through unchanged, overrides apply only to a formed Response.
type Headered struct {
	Inner     any
	Overrides map[string]string
}

// Resolve overlays the Overrides onto the inner value's Response.
func (h Headered) Resolve(rv Resolver, r *http.Request) Outcome {
	out := rv.Resolve(h.Inner, r)
	resp := out.Response()
	if resp == nil {
		return out
	}

	for k, v := range h.Overrides {
		resp.SetHeader(k, v)
	}

	return out
}

// A Status composes an inner resolvable value with a status code override.
type Status struct {
	Inner any
	Code  int
}

// Resolve replaces the status code on the inner value's Response.
// A zero Code leaves the inner status in place.
func (s Status) Resolve(rv Resolver, r *http.Request) Outcome {
	out := rv.Resolve(s.Inner, r)
	resp := out.Response()
	if resp == nil {
		return out
	}

	if s.Code != 0 {
		resp.SetCode(s.Code)
	}

	return out
}
