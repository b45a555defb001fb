package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "passwarden/internal/delivery/context"
	domainerrors "passwarden/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	seen []observation
}

func (f *fakeObserver) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	f.seen = append(f.seen, observation{method: method, route: route, status: status})
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expectID func(t *testing.T, id string)
	}{
		{
			name:   "keeps caller id",
			header: "abc-123",
			expectID: func(t *testing.T, id string) {
				assert.Equal(t, "abc-123", id)
			},
		},
		{
			name: "generates when missing",
			expectID: func(t *testing.T, id string) {
				assert.Len(t, id, 36)
			},
		},
		{
			name:   "regenerates oversized id",
			header: strings.Repeat("x", maxRequestIDLength+1),
			expectID: func(t *testing.T, id string) {
				assert.Len(t, id, 36)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&logs, nil))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := RequestID(logger)(func(c echo.Context) error {
				seen = deliverycontext.GetRequestID(c)
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

				return nil
			})(c)
			require.NoError(t, err)

			tt.expectID(t, seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Contains(t, logs.String(), `"request_id":"`+seen+`"`)
		})
	}
}

func TestAccessLog(t *testing.T) {
	tests := []struct {
		name         string
		debug        bool
		handler      echo.HandlerFunc
		expectStatus int
		expectLevel  string
	}{
		{
			name:  "success is observed but not logged outside debug",
			debug: false,
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			},
			expectStatus: http.StatusNoContent,
		},
		{
			name:  "app error status is taken from the error",
			debug: true,
			handler: func(echo.Context) error {
				return domainerrors.ErrForbidden
			},
			expectStatus: http.StatusForbidden,
			expectLevel:  "WARN",
		},
		{
			name:  "echo error status is taken from the error",
			debug: true,
			handler: func(echo.Context) error {
				return echo.ErrNotFound
			},
			expectStatus: http.StatusNotFound,
			expectLevel:  "WARN",
		},
		{
			name:  "unknown error counts as internal",
			debug: true,
			handler: func(echo.Context) error {
				return assert.AnError
			},
			expectStatus: http.StatusInternalServerError,
			expectLevel:  "ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			observer := &fakeObserver{}
			mw := AccessLog(AccessLogConfig{
				Logger:   slog.New(slog.NewJSONHandler(&logs, nil)),
				Debug:    tt.debug,
				Observer: observer,
			})

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/login", nil), httptest.NewRecorder())
			c.SetPath("/login")

			_ = mw(tt.handler)(c)

			require.Len(t, observer.seen, 1)
			assert.Equal(t, observation{method: http.MethodPost, route: "/login", status: tt.expectStatus}, observer.seen[0])

			if tt.expectLevel == "" {
				assert.Empty(t, logs.String())

				return
			}
			assert.Contains(t, logs.String(), `"level":"`+tt.expectLevel+`"`)
		})
	}
}

func TestAccessLog_UnmatchedRoute(t *testing.T) {
	observer := &fakeObserver{}
	mw := AccessLog(AccessLogConfig{Observer: observer})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/nope", nil), httptest.NewRecorder())

	_ = mw(func(echo.Context) error { return echo.ErrNotFound })(c)

	require.Len(t, observer.seen, 1)
	assert.Equal(t, "unmatched", observer.seen[0].route)
}
