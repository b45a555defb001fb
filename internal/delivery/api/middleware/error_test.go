package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"passwarden/internal/delivery/api/response"
	domainerrors "passwarden/internal/domain/errors"
	"passwarden/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "wrapped app error keeps details for 4xx",
			err:         errors.Wrap(domainerrors.ErrPasswordPolicy.WithDetails("too short"), "validate"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "PASSWORD_POLICY",
			wantDetails: "too short",
		},
		{
			name:       "forbidden hides details",
			err:        domainerrors.ErrForbidden.WithDetails("grant_manager requires the password_manager role"),
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "echo not found",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "body too large",
			err:        echo.ErrStatusRequestEntityTooLarge,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "REQUEST_TOO_LARGE",
		},
		{
			name:       "failed transaction keeps its code but not the cause",
			err:        errors.Join(domainerrors.ErrTransactionFailed, errors.New("dial tcp: connection refused")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "TRANSACTION_FAILED",
		},
		{
			name:       "unknown error becomes opaque 500",
			err:        errors.New("dial tcp: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}
