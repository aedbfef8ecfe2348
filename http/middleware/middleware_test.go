package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/switchback-web/switchback/http/middleware"
)

// teapotHandler returns a handler writing a fixed 418.
func teapotHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})
}

func TestChain(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	var order []string
	tag := func(name string) middleware.Adapter {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				order = append(order, name)
				h.ServeHTTP(wx, rx)
			})
		}
	}

	// Act
	middleware.Chain(teapotHandler(), tag("first"), tag("second")).ServeHTTP(w, r)

	// Assert
	require.Equal(t, []string{"first", "second"}, order)
	require.Equal(t, http.StatusTeapot, w.Code)
}

func TestNoopAdapter(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	middleware.NoopAdapter(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusTeapot, w.Code)
}
