package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/venues/:id", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/metrics", m.Handler())

	for _, p := range []string{"/venues/1", "/venues/2"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",route="/venues/:id",status="200"} 2`)
	assert.Contains(t, body, "http_request_duration_seconds_bucket")
	assert.Contains(t, body, "http_inflight_requests 1")
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(RequestLogger(zerolog.New(&buf)))
	e.GET("/venues", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(http.MethodGet, "/venues", nil)
	e.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "/venues", line["route"])
	assert.EqualValues(t, 200, line["status"])
}

func TestAdminGuard(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "s3cret"))
	assert.False(t, VerifyPassword(hash, "nope"))

	e := echo.New()
	e.POST("/venues/create", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, AdminGuard("admin", hash))
	e.POST("/open", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, AdminGuard("", ""))

	cases := []struct {
		name string
		path string
		user string
		pass string
		want int
	}{
		{"valid", "/venues/create", "admin", "s3cret", http.StatusNoContent},
		{"wrong password", "/venues/create", "admin", "bad", http.StatusUnauthorized},
		{"wrong user", "/venues/create", "root", "s3cret", http.StatusUnauthorized},
		{"disabled", "/open", "", "", http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tc.path, nil)
			if tc.user != "" {
				req.SetBasicAuth(tc.user, tc.pass)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}
