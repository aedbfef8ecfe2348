package resolve

// An Outcome is the tagged result of resolving a value:
// either a fully formed *Response,
// or a forward to the error catcher registered for a status code.
// No other states exist.
type Outcome struct {
	resp    *Response
	forward int
}

// Respond wraps the fully formed *Response in an Outcome.
func Respond(resp *Response) Outcome { return Outcome{resp: resp} }

// Forward signals the catcher registered for code
// should produce the client-visible response.
func Forward(code int) Outcome { return Outcome{forward: code} }

// Forwarded returns the status code the Outcome forwards to
// and whether the Outcome is a forward at all.
func (o Outcome) Forwarded() (int, bool) { return o.forward, o.forward != 0 }

// Response returns the formed *Response, or nil when the Outcome is a forward.
func (o Outcome) Response() *Response { return o.resp }
