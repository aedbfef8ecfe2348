package waypoint_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/switchback-web/switchback"
	"github.com/switchback-web/switchback/http/router"
	"github.com/switchback-web/switchback/waypoint"
)

func TestNew(t *testing.T) {
	// Arrange + Act
	wp, err := waypoint.New(waypoint.WithEnv("TESTING"))

	// Assert
	require.Nil(t, err)
	require.Equal(t, switchback.Testing, wp.EmitEnv())
	require.NotNil(t, wp.EmitLogger())
	require.NotNil(t, wp.Router)
	require.NotNil(t, wp.Resolver)
}

func TestNewWithBadEnv(t *testing.T) {
	// Arrange
	t.Setenv("ENVIRONMENT", "")

	// Act
	wp, err := waypoint.New(waypoint.WithEnv("NOT-AN-ENV"))

	// Assert
	require.Nil(t, err)
	require.Equal(t, switchback.Development, wp.EmitEnv())
}

func TestWaypointHandlesRoutes(t *testing.T) {
	// Arrange
	wp, err := waypoint.New(waypoint.WithEnv("TESTING"))
	require.Nil(t, err)

	wp.Handle(router.Route{
		Path:    "/ping",
		Method:  http.MethodGet,
		Handler: func(*http.Request) any { return "pong" },
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)

	// Act
	wp.ServeHTTP(rr, req)

	// Assert
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "pong", rr.Body.String())

	// Arrange -- no registered route matches
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/missing", nil)

	// Act
	wp.ServeHTTP(rr, req)

	// Assert
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "404 Not Found", rr.Body.String())
}
