package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cfelipe-app/Route/internal/capacity"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveListing(t *testing.T) {
	metrics := New()

	metrics.ObserveListing("orders", http.StatusOK, 20*time.Millisecond, 25)
	metrics.ObserveListing("orders", http.StatusOK, 10*time.Millisecond, 0)
	metrics.ObserveListing("orders", http.StatusBadRequest, time.Millisecond, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.listingRequests.WithLabelValues("orders", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.listingRequests.WithLabelValues("orders", "400")))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.listingTotal))
}

func TestSetCapacitySummary(t *testing.T) {
	metrics := New()

	metrics.SetCapacitySummary(capacity.NewSummary(map[capacity.Status]uint64{capacity.StatusOpen: 4}))
	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.capacityRequests.WithLabelValues("Open")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.capacityRequests.WithLabelValues("Closed")))
}

func TestHandler(t *testing.T) {
	metrics := New()
	metrics.ObserveListing("providers", http.StatusOK, time.Millisecond, 1)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route_listing_requests_total{code="200",entity="providers"} 1`)
}
