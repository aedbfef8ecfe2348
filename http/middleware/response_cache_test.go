package middleware_test

import (
	"context"
	"crypto/sha256"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/switchback-web/switchback/http/middleware"
)

func TestCacheResponses(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	w := httptest.NewRecorder()

	cache := middleware.NewCachedResMap()

	// Act
	middleware.CacheResponses(nil, nil)(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)

	// Arrange
	r = httptest.NewRequest(http.MethodPost, "https://example.com", nil)
	w = httptest.NewRecorder()

	// Act
	middleware.CacheResponses(cache, sha256.New())(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Arrange
	testKey := "test-idempotency"
	h := sha256.New()
	b := h.Sum(nil)
	h.Reset()

	r = httptest.NewRequest(http.MethodPost, "https://example.com", nil)
	r.Header.Set(middleware.IdempotencyHeader, testKey)

	w = httptest.NewRecorder()

	// Act
	middleware.CacheResponses(cache, h)(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusTeapot, w.Code)

	v, ok := cache.Get(context.Background(), testKey)
	require.True(t, ok)
	require.Equal(t, http.StatusTeapot, v.Status)
	require.Equal(t, b, v.Req)
	require.Equal(t, "short and stout", v.Body.String())

	// Arrange: replay with the same key and body
	r = httptest.NewRequest(http.MethodPost, "https://example.com", nil)
	r.Header.Set(middleware.IdempotencyHeader, testKey)

	w = httptest.NewRecorder()

	var called bool
	replay := http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) { called = true })

	// Act
	middleware.CacheResponses(cache, sha256.New())(replay).ServeHTTP(w, r)

	// Assert: served from cache, handler untouched
	require.False(t, called)
	require.Equal(t, http.StatusTeapot, w.Code)
	require.Equal(t, "short and stout", w.Body.String())

	// Arrange: same key, different URI
	r = httptest.NewRequest(http.MethodPost, "https://example.com/other", nil)
	r.Header.Set(middleware.IdempotencyHeader, testKey)

	w = httptest.NewRecorder()

	// Act
	middleware.CacheResponses(cache, sha256.New())(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Arrange: same key, different request body
	r = httptest.NewRequest(http.MethodPost, "https://example.com", strings.NewReader("different"))
	r.Header.Set(middleware.IdempotencyHeader, testKey)

	w = httptest.NewRecorder()

	// Act
	middleware.CacheResponses(cache, sha256.New())(teapotHandler()).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCacheResponsesHeaders(t *testing.T) {
	// Arrange
	cache := middleware.NewCachedResMap()
	testKey := "test-headers"

	headered := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true}`))
	})

	r := httptest.NewRequest(http.MethodPost, "https://example.com", nil)
	r.Header.Set(middleware.IdempotencyHeader, testKey)
	w := httptest.NewRecorder()

	// Act
	middleware.CacheResponses(cache, sha256.New())(headered).ServeHTTP(w, r)

	// Assert
	v, ok := cache.Get(context.Background(), testKey)
	require.True(t, ok)
	require.Equal(t, "application/json", v.Headers["Content-Type"])

	// Arrange: replay
	r = httptest.NewRequest(http.MethodPost, "https://example.com", nil)
	r.Header.Set(middleware.IdempotencyHeader, testKey)
	w = httptest.NewRecorder()

	// Act
	middleware.CacheResponses(cache, sha256.New())(headered).ServeHTTP(w, r)

	// Assert: headers replayed alongside status and body
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.Equal(t, `{"ok":true}`, w.Body.String())
}

func TestCachedResGob(t *testing.T) {
	// Arrange
	cr := middleware.NewCachedRes("/somewhere", []byte{0x01})
	cr.Status = http.StatusCreated
	cr.Headers["Content-Type"] = "application/json"
	cr.Body.WriteString(`{"ok":true}`)

	// Act
	b, err := cr.GobEncode()
	require.Nil(t, err)

	decoded := new(middleware.CachedRes)
	err = decoded.GobDecode(b)

	// Assert
	require.Nil(t, err)
	require.Equal(t, cr.Status, decoded.Status)
	require.Equal(t, cr.Headers, decoded.Headers)
	require.Equal(t, cr.URI, decoded.URI)
	require.Equal(t, cr.Body.String(), decoded.Body.String())
}
