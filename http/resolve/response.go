package resolve

import (
	"fmt"
	"io"
	"net/http"
	"net/textproto"
)

// streamChunkSize is how many bytes of a streamed body are produced
// between checks for client disconnection.
const streamChunkSize = 32 * 1024

// A Response is the uniform triple every resolvable value reduces to:
// a status code, a header map with unique keys,
// and a body that is either a fixed byte slice or a lazily produced stream.
//
// Exactly one body representation is active at a time;
// SetBody and SetStream each clear the other.
//
// A Response is built per request and consumed immediately by Write;
// it is not shared across requests.
type Response struct {
	code    int
	headers map[string]string
	body    []byte
	stream  io.Reader
}

// NewResponse constructs a *Response with the given status code,
// no headers and an empty fixed body.
func NewResponse(code int) *Response {
	return &Response{code: code, headers: make(map[string]string)}
}

// Code returns the status code.
func (resp *Response) Code() int { return resp.code }

// SetCode replaces the status code.
func (resp *Response) SetCode(code int) { resp.code = code }

// Header returns the value set for the header name, or "".
//
// Names are canonicalized, so Header("content-type") and
// Header("Content-Type") retrieve the same value.
func (resp *Response) Header(name string) string {
	return resp.headers[textproto.CanonicalMIMEHeaderKey(name)]
}

// Headers returns a copy of the header map.
func (resp *Response) Headers() map[string]string {
	m := make(map[string]string, len(resp.headers))
	for k, v := range resp.headers {
		m[k] = v
	}

	return m
}

// SetHeader pairs val to the canonicalized header name,
// replacing any value already set for it.
func (resp *Response) SetHeader(name, val string) {
	resp.headers[textproto.CanonicalMIMEHeaderKey(name)] = val
}

// Body returns the fixed body, or nil when the body is streamed.
func (resp *Response) Body() []byte { return resp.body }

// SetBody makes b the fixed body, dropping any stream previously set.
//
// A dropped stream is closed so held resources release deterministically.
func (resp *Response) SetBody(b []byte) {
	resp.Close()
	resp.stream = nil
	resp.body = b
}

// SetStream makes rdr the lazily produced body,
// dropping any fixed body previously set.
func (resp *Response) SetStream(rdr io.Reader) {
	resp.body = nil
	resp.stream = rdr
}

// Streamed reports whether the active body representation is a stream.
func (resp *Response) Streamed() bool { return resp.stream != nil }

// Close releases the streamed body when it holds closeable resources.
// Close is safe to call on a fixed-body Response.
func (resp *Response) Close() error {
	if c, ok := resp.stream.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// Write sends the Response over w: headers first, then the status code,
// then the body.
//
// A streamed body is copied incrementally; production halts as soon as the
// request context reports the client hung up, and the stream is closed on
// every exit. Each produced chunk is flushed when w supports it.
func (resp *Response) Write(w http.ResponseWriter, r *http.Request) error {
	for k, v := range resp.headers {
		w.Header().Set(k, v)
	}

	code := resp.code
	if code == 0 {
		code = http.StatusOK
	}
	w.WriteHeader(code)

	if resp.stream == nil {
		_, err := w.Write(resp.body)
		return err
	}

	return resp.writeStream(w, r)
}

// writeStream copies the streamed body to w in chunks,
// checking for cancellation between each.
func (resp *Response) writeStream(w http.ResponseWriter, r *http.Request) error {
	defer resp.Close()

	flusher, _ := w.(http.Flusher)
	buf := make([]byte, streamChunkSize)
	for {
		select {
		case <-r.Context().Done():
			return fmt.Errorf("%w: client gone mid-stream", ErrDone)
		default:
		}

		n, err := resp.stream.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return werr
			}

			if flusher != nil {
				flusher.Flush()
			}
		}

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}
	}
}
