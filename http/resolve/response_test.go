package resolve_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/switchback-web/switchback/http/resolve"
)

// A closeTracker records whether its Close was called.
type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

// A blockedReader produces a first chunk then waits for cancellation.
type blockedReader struct {
	ctx  context.Context
	sent bool
}

func (b *blockedReader) Read(p []byte) (int, error) {
	if !b.sent {
		b.sent = true
		return copy(p, "first chunk"), nil
	}

	<-b.ctx.Done()
	return copy(p, "never seen"), nil
}

func TestResponseHeaders(t *testing.T) {
	// Arrange
	resp := resolve.NewResponse(http.StatusOK)

	// Act
	resp.SetHeader("content-type", "text/plain")
	resp.SetHeader("Content-Type", "application/json")

	// Assert: keys are unique under canonicalization, last set wins
	require.Equal(t, "application/json", resp.Header("CONTENT-TYPE"))
	require.Len(t, resp.Headers(), 1)
}

func TestResponseBodyExclusivity(t *testing.T) {
	// Arrange
	resp := resolve.NewResponse(http.StatusOK)

	// Act
	resp.SetStream(strings.NewReader("streamed"))
	resp.SetBody([]byte("fixed"))

	// Assert
	require.False(t, resp.Streamed())
	require.Equal(t, []byte("fixed"), resp.Body())

	// Act
	resp.SetStream(strings.NewReader("streamed"))

	// Assert
	require.True(t, resp.Streamed())
	require.Nil(t, resp.Body())
}

func TestResponseWrite(t *testing.T) {
	t.Run("Fixed", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
		w := httptest.NewRecorder()
		resp := resolve.NewResponse(http.StatusCreated)
		resp.SetHeader("Content-Type", "text/plain; charset=utf-8")
		resp.SetBody([]byte("made"))

		// Act
		err := resp.Write(w, r)

		// Assert
		require.Nil(t, err)
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
		require.Equal(t, "made", w.Body.String())
	})

	t.Run("Zero-Code-Defaults-OK", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
		w := httptest.NewRecorder()
		resp := resolve.NewResponse(0)

		// Act
		err := resp.Write(w, r)

		// Assert
		require.Nil(t, err)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Streamed", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
		w := httptest.NewRecorder()
		src := &closeTracker{Reader: strings.NewReader("lazily produced")}
		resp := resolve.NewResponse(http.StatusOK)
		resp.SetStream(src)

		// Act
		err := resp.Write(w, r)

		// Assert
		require.Nil(t, err)
		require.Equal(t, "lazily produced", w.Body.String())
		require.True(t, src.closed)
	})

	t.Run("Streamed-Cancelled", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
		ctx, cancel := context.WithCancel(r.Context())
		r = r.Clone(ctx)
		w := httptest.NewRecorder()

		src := &closeTracker{Reader: &blockedReader{ctx: ctx}}
		resp := resolve.NewResponse(http.StatusOK)
		resp.SetStream(src)

		cancel()

		// Act
		err := resp.Write(w, r)

		// Assert: production stopped and the source was released
		require.ErrorIs(t, err, resolve.ErrDone)
		require.True(t, src.closed)
	})
}

func TestResponseClose(t *testing.T) {
	// Arrange
	src := &closeTracker{Reader: strings.NewReader("x")}
	resp := resolve.NewResponse(http.StatusOK)
	resp.SetStream(src)

	// Act + Assert
	require.Nil(t, resp.Close())
	require.True(t, src.closed)

	// A fixed body has nothing to close.
	require.Nil(t, resolve.NewResponse(http.StatusOK).Close())
}
