package resolve

import (
	"fmt"
	"net/http"
	"sync"
)

// A Catcher produces the client-visible *Response for a status code
// no direct Response was formed for.
type Catcher func(code int, r *http.Request) *Response

// Catchers registers a Catcher per status code and satisfies forwards
// against that registry.
//
// A Catchers is safe for concurrent use.
type Catchers struct {
	mu  sync.RWMutex
	reg map[int]Catcher
}

// NewCatchers constructs an empty *Catchers.
// Every standard status code is still caught through the default
// catch-all representation.
func NewCatchers() *Catchers {
	return &Catchers{reg: make(map[int]Catcher)}
}

// Register pairs fn to code, replacing any Catcher previously registered
// for it.
func (c *Catchers) Register(code int, fn Catcher) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reg[code] = fn
}

// Catch produces the *Response for code.
//
// An unregistered code with a canonical description gets the default
// catch-all representation: the code plus its generic status text.
// A custom code with no canonical description falls back to the 500 Catcher.
func (c *Catchers) Catch(code int, r *http.Request) *Response {
	c.mu.RLock()
	fn, ok := c.reg[code]
	c.mu.RUnlock()

	if ok {
		return fn(code, r)
	}

	if http.StatusText(code) == "" {
		return c.Catch(http.StatusInternalServerError, r)
	}

	return defaultCatch(code)
}

// defaultCatch is the catch-all representation of an error status.
func defaultCatch(code int) *Response {
	resp := NewResponse(code)
	resp.SetHeader("Content-Type", "text/plain; charset=utf-8")
	resp.SetBody([]byte(fmt.Sprintf("%d %s", code, http.StatusText(code))))
	return resp
}
