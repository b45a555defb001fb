package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counters(t *testing.T) {
	recorder := New()

	recorder.RecordLogin("success")
	recorder.RecordLogin("failure")
	recorder.RecordLogin("failure")
	recorder.RecordRegistration("conflict")
	recorder.RecordPasswordChange("admin-reset")
	recorder.RecordAuthorizationDenial("grant_manager")

	assert.InDelta(t, 1, testutil.ToFloat64(recorder.logins.WithLabelValues("success")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(recorder.logins.WithLabelValues("failure")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.registrations.WithLabelValues("conflict")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.passwordChanges.WithLabelValues("admin-reset")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.authorizationDenied.WithLabelValues("grant_manager")), 0)
}

func TestRecorder_IndependentRegistries(t *testing.T) {
	first := New()
	second := New()

	first.RecordLogin("success")

	assert.InDelta(t, 0, testutil.ToFloat64(second.logins.WithLabelValues("success")), 0)
}

func TestRecorder_Handler(t *testing.T) {
	recorder := New()
	recorder.RecordPasswordChange("self-change")

	rec := httptest.NewRecorder()
	recorder.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `passwarden_password_changes_total{kind="self-change"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRecorder_ObserveHTTPRequest(t *testing.T) {
	recorder := New()
	recorder.ObserveHTTPRequest(http.MethodPost, "/login", http.StatusUnauthorized, 20*time.Millisecond)
	recorder.ObserveHTTPRequest(http.MethodPost, "/login", http.StatusUnauthorized, 40*time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(recorder.requestDuration))

	rec := httptest.NewRecorder()
	recorder.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(),
		`passwarden_http_request_duration_seconds_count{method="POST",route="/login",status="401"} 2`)
}
