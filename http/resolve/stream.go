package resolve

import (
	"io"
	"net/http"

	"github.com/switchback-web/switchback/logger"
)

// A Stream responds with a lazily produced body read from Reader.
//
// The Reader is consumed incrementally by Response.Write: production stops
// if the client disconnects mid-stream, and a Reader implementing io.Closer
// is closed on every exit so file handles and sockets release
// deterministically.
type Stream struct {
	// ContentType is the media type of the produced bytes.
	// Empty defaults to application/octet-stream.
	ContentType string

	Reader io.Reader
}

// Resolve forms a streamed 200 Response around the Reader.
// A nil Reader is a programming error: it is logged and forwarded to 500.
func (s Stream) Resolve(rv Resolver, r *http.Request) Outcome {
	if s.Reader == nil {
		rv.logger.Error("stream has no reader", &logger.LogContext{Request: r})
		return Forward(http.StatusInternalServerError)
	}

	ct := s.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}

	resp := NewResponse(http.StatusOK)
	resp.SetHeader("Content-Type", ct)
	resp.SetStream(s.Reader)
	return Respond(resp)
}
