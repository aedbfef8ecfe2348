package resolve_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/switchback-web/switchback/http/resolve"
)

func TestStreamResolve(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
		rv := resolve.New(resolve.WithLogger(newLogger()))

		// Act
		out := rv.Resolve(resolve.Stream{Reader: strings.NewReader("produced")}, r)

		// Assert
		resp := out.Response()
		require.NotNil(t, resp)
		require.True(t, resp.Streamed())
		require.Equal(t, http.StatusOK, resp.Code())
		require.Equal(t, "application/octet-stream", resp.Header("Content-Type"))
	})

	t.Run("Content-Type", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
		rv := resolve.New(resolve.WithLogger(newLogger()))
		s := resolve.Stream{ContentType: "text/event-stream", Reader: strings.NewReader("data: hi")}

		// Act
		out := rv.Resolve(s, r)

		// Assert
		require.Equal(t, "text/event-stream", out.Response().Header("Content-Type"))
	})

	t.Run("Nil-Reader", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
		l := newLogger()
		rv := resolve.New(resolve.WithLogger(l))

		// Act
		out := rv.Resolve(resolve.Stream{}, r)

		// Assert
		code, ok := out.Forwarded()
		require.True(t, ok)
		require.Equal(t, http.StatusInternalServerError, code)
		require.NotZero(t, l.b.Len())
	})

	t.Run("Plain-Reader-Dispatch", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
		rv := resolve.New(resolve.WithLogger(newLogger()))

		// Act
		out := rv.Resolve(strings.NewReader("produced"), r)

		// Assert
		require.NotNil(t, out.Response())
		require.True(t, out.Response().Streamed())
	})
}
