package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveHTTP(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/jobs/:id", "200"))
	ObserveHTTP("GET", "/api/jobs/:id", http.StatusOK, 12*time.Millisecond)
	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/jobs/:id", "200"))
	assert.Equal(t, before+1, after)
}

func TestDomainCounters(t *testing.T) {
	before := testutil.ToFloat64(applicationEvents.WithLabelValues("submitted"))
	RecordApplicationEvent("submitted")
	assert.Equal(t, before+1, testutil.ToFloat64(applicationEvents.WithLabelValues("submitted")))

	RecordUpload("resume", false)
	assert.Equal(t, float64(1), testutil.ToFloat64(uploads.WithLabelValues("resume", "rejected")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	RecordRegistration("student")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jobportal_accounts_registrations_total")
}
