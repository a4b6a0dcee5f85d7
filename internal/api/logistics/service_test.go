package logistics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cfelipe-app/Route/internal/api/schema"
	"github.com/cfelipe-app/Route/internal/capacity"
	"github.com/cfelipe-app/Route/internal/config"
	"github.com/cfelipe-app/Route/internal/offer"
	"github.com/cfelipe-app/Route/internal/provider"
	"github.com/cfelipe-app/Route/internal/query"
	"github.com/cfelipe-app/Route/internal/storage/memory"
	"github.com/cfelipe-app/Route/internal/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	t       *testing.T
	handler http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	driver := memory.NewWithClock(func() time.Time {
		return time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	})
	require.NoError(t, driver.Initialize(context.Background()))
	t.Cleanup(driver.Close)

	service := &Service{
		Config: &config.Config{
			AllowedOrigins:  []string{"*"},
			DefaultPageSize: 10,
			MaxPageSize:     50,
		},
		Storage: driver,
	}
	return &testAPI{t: t, handler: service.Handler()}
}

func (api *testAPI) do(ctx context.Context, method, target string, body any) *httptest.ResponseRecorder {
	api.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(api.t, err)
		reader = bytes.NewReader(raw)
	}

	request := httptest.NewRequest(method, target, reader).WithContext(ctx)
	recorder := httptest.NewRecorder()
	api.handler.ServeHTTP(recorder, request)
	return recorder
}

func (api *testAPI) request(method, target string, body any) *httptest.ResponseRecorder {
	api.t.Helper()
	return api.do(context.Background(), method, target, body)
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var res T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	return res
}

func errorTypes(t *testing.T, recorder *httptest.ResponseRecorder) []string {
	t.Helper()
	res := decode[schema.ErrorResponse](t, recorder)
	types := make([]string, 0, len(res.Errors))
	for _, err := range res.Errors {
		types = append(types, err.Type)
	}
	return types
}

// createProviders creates n providers; their IDs are 1 to n
func createProviders(t *testing.T, api *testAPI, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		res := api.request(http.MethodPost, "/v1/providers", map[string]any{
			"name":  fmt.Sprintf("Transportes %02d", i),
			"taxId": fmt.Sprintf("2010000%04d", i),
		})
		require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
	}
}

func createVehicle(t *testing.T, api *testAPI, providerID int64, plate string) *vehicle.Vehicle {
	t.Helper()
	res := api.request(http.MethodPost, "/v1/vehicles", map[string]any{"providerId": providerID, "plate": plate})
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
	obj := decode[vehicle.Vehicle](t, res)
	return &obj
}

func TestProviders_Paged(t *testing.T) {
	api := newTestAPI(t)

	for i := 1; i <= 15; i++ {
		res := api.request(http.MethodPost, "/v1/providers", map[string]any{
			"name":  fmt.Sprintf("Transportes %02d", i),
			"taxId": fmt.Sprintf("2010000%04d", i),
		})
		require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
	}

	res := api.request(http.MethodGet, "/v1/providers/paged?page=2&recordsNumber=10&sortBy=name&sortDir=desc", nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "15", res.Header().Get(schema.HeaderTotalCount))

	page := decode[query.Page[*provider.Provider]](t, res)
	assert.Equal(t, uint64(15), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.PageSize)
	require.Len(t, page.Items, 5)
	assert.Equal(t, "Transportes 05", page.Items[0].Name)
	assert.Equal(t, "Transportes 01", page.Items[4].Name)

	raw := decode[map[string]any](t, res)
	assert.EqualValues(t, 2, raw["totalPages"])
}

func TestProviders_PagedNormalizesParameters(t *testing.T) {
	api := newTestAPI(t)

	res := api.request(http.MethodGet, "/v1/providers/paged?page=abc&recordsNumber=500&sortBy=unknown", nil)
	require.Equal(t, http.StatusOK, res.Code)

	raw := decode[map[string]any](t, res)
	assert.Equal(t, []any{}, raw["items"])
	assert.EqualValues(t, 1, raw["page"])
	assert.EqualValues(t, 50, raw["pageSize"])
	assert.EqualValues(t, 0, raw["total"])
	assert.EqualValues(t, 0, raw["totalPages"])
}

func TestProviders_PagedFarPastTheEnd(t *testing.T) {
	api := newTestAPI(t)

	for i := 1; i <= 3; i++ {
		res := api.request(http.MethodPost, "/v1/providers", map[string]any{
			"name":  fmt.Sprintf("Transportes %02d", i),
			"taxId": fmt.Sprintf("2010000%04d", i),
		})
		require.Equal(t, http.StatusCreated, res.Code)
	}

	res := api.request(http.MethodGet, "/v1/providers/paged?page=576460752303423489&recordsNumber=32", nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "3", res.Header().Get(schema.HeaderTotalCount))

	page := decode[query.Page[*provider.Provider]](t, res)
	assert.Empty(t, page.Items)
	assert.Equal(t, 576460752303423489, page.Page)
	assert.Equal(t, uint64(3), page.Total)
}

func TestProviders_PagedRejectsMalformedFilters(t *testing.T) {
	api := newTestAPI(t)

	res := api.request(http.MethodGet, "/v1/providers/paged?isActive=maybe&fromCreated=yesterday", nil)
	require.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, []string{
		"validation.query.parameter.invalidType",
		"validation.query.parameter.invalidType",
	}, errorTypes(t, res))
}

func TestProviders_GetCreateDelete(t *testing.T) {
	api := newTestAPI(t)

	res := api.request(http.MethodPost, "/v1/providers", map[string]any{"name": "Sur Cargo"})
	require.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, []string{"validation.requestBody.parameter.missing"}, errorTypes(t, res))

	res = api.request(http.MethodPost, "/v1/providers", map[string]any{"name": " Sur Cargo ", "taxId": "20100000001"})
	require.Equal(t, http.StatusCreated, res.Code)
	created := decode[provider.Provider](t, res)
	assert.Equal(t, "Sur Cargo", created.Name)
	assert.True(t, created.IsActive)

	res = api.request(http.MethodGet, fmt.Sprintf("/v1/providers/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, created.ID, decode[provider.Provider](t, res).ID)

	res = api.request(http.MethodDelete, fmt.Sprintf("/v1/providers/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, res.Code)

	res = api.request(http.MethodGet, fmt.Sprintf("/v1/providers/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, []string{"generic.notFound"}, errorTypes(t, res))

	res = api.request(http.MethodGet, "/v1/providers/abc", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestVehicles_DuplicatePlate(t *testing.T) {
	api := newTestAPI(t)
	createProviders(t, api, 1)

	body := map[string]any{"providerId": 1, "plate": "abc-123", "capacityKg": 1500}
	res := api.request(http.MethodPost, "/v1/vehicles", body)
	require.Equal(t, http.StatusCreated, res.Code)

	body["plate"] = " ABC-123 "
	res = api.request(http.MethodPost, "/v1/vehicles", body)
	require.Equal(t, http.StatusConflict, res.Code)
	assert.Equal(t, []string{"generic.duplicate"}, errorTypes(t, res))

	res = api.request(http.MethodGet, "/v1/vehicles/paged?providerId=1", nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "1", res.Header().Get(schema.HeaderTotalCount))
}

func TestOrders_StatusFilter(t *testing.T) {
	api := newTestAPI(t)

	for i, status := range []string{"Pending", "Delivered", "delivered"} {
		res := api.request(http.MethodPost, "/v1/orders", map[string]any{
			"externalOrderNo": fmt.Sprintf("OV-%d", i),
			"customerName":    "Mercado Central",
			"address":         "Av. Grau 123",
			"status":          status,
		})
		require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
	}

	res := api.request(http.MethodPost, "/v1/orders", map[string]any{
		"externalOrderNo": "OV-X",
		"customerName":    "Mercado Central",
		"address":         "Av. Grau 123",
		"status":          "Lost",
	})
	require.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, []string{"validation.requestBody.parameter.invalidValue"}, errorTypes(t, res))

	res = api.request(http.MethodGet, "/v1/orders/paged?status=Delivered&term=mercado", nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "2", res.Header().Get(schema.HeaderTotalCount))

	res = api.request(http.MethodGet, "/v1/orders/paged?status=Lost", nil)
	require.Equal(t, http.StatusBadRequest, res.Code)
}

func createCapacityRequest(t *testing.T, api *testAPI, body map[string]any) *capacity.Request {
	t.Helper()
	if _, ok := body["serviceDate"]; !ok {
		body["serviceDate"] = "2025-10-01T00:00:00Z"
	}
	if _, ok := body["requiredVehicles"]; !ok {
		body["requiredVehicles"] = 1
	}
	res := api.request(http.MethodPost, "/v1/capacity_requests", body)
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
	req := decode[capacity.Request](t, res)
	return &req
}

func TestCapacityRequests_Visibility(t *testing.T) {
	api := newTestAPI(t)
	createProviders(t, api, 6)

	createCapacityRequest(t, api, map[string]any{"zone": "Lima Sur"})
	createCapacityRequest(t, api, map[string]any{"zone": "Lima Norte", "onlyTargetProvider": true, "providerId": 5})
	createCapacityRequest(t, api, map[string]any{"zone": "Callao", "onlyTargetProvider": true, "providerId": 6})

	res := api.request(http.MethodGet, "/v1/capacity_requests/paged?visibleForProvider=true&providerId=5&sortBy=id", nil)
	require.Equal(t, http.StatusOK, res.Code)
	page := decode[query.Page[*capacity.Request]](t, res)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Lima Sur", *page.Items[0].Zone)
	assert.Equal(t, "Lima Norte", *page.Items[1].Zone)

	res = api.request(http.MethodGet, "/v1/capacity_requests/paged?providerId=5", nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "3", res.Header().Get(schema.HeaderTotalCount))

	res = api.request(http.MethodGet, "/v1/capacity_requests/paged?visibleForProvider=true", nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "3", res.Header().Get(schema.HeaderTotalCount))

	res = api.request(http.MethodGet, "/v1/capacity_requests/paged?term=LIMA&visibleForProvider=true&providerId=6", nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "1", res.Header().Get(schema.HeaderTotalCount))
}

func TestCapacityRequests_StatusAndSummary(t *testing.T) {
	api := newTestAPI(t)

	first := createCapacityRequest(t, api, map[string]any{"serviceDate": "2025-10-01T08:00:00Z"})
	createCapacityRequest(t, api, map[string]any{"serviceDate": "2025-10-01T23:30:00Z"})
	createCapacityRequest(t, api, map[string]any{"serviceDate": "2025-10-02T00:00:00Z"})
	assert.Equal(t, capacity.StatusOpen, first.Status)

	target := fmt.Sprintf("/v1/capacity_requests/%d/status", first.ID)
	res := api.request(http.MethodPut, target, map[string]any{"status": "closed"})
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, capacity.StatusClosed, decode[capacity.Request](t, res).Status)

	res = api.request(http.MethodPut, target, map[string]any{"status": "Finished"})
	require.Equal(t, http.StatusBadRequest, res.Code)

	res = api.request(http.MethodPut, "/v1/capacity_requests/999/status", map[string]any{"status": "Closed"})
	require.Equal(t, http.StatusNotFound, res.Code)

	res = api.request(http.MethodGet, "/v1/capacity_requests/summary?fromServiceDate=2025-10-01&toServiceDate=2025-10-01", nil)
	require.Equal(t, http.StatusOK, res.Code)
	summary := decode[capacity.Summary](t, res)
	assert.Equal(t, uint64(2), summary.Total)
	assert.Equal(t, uint64(1), summary.ByStatus[capacity.StatusOpen])
	assert.Equal(t, uint64(1), summary.ByStatus[capacity.StatusClosed])
	assert.Equal(t, uint64(0), summary.ByStatus[capacity.StatusCancelled])
	assert.Len(t, summary.ByStatus, len(capacity.Statuses))

	res = api.request(http.MethodGet, "/v1/capacity_requests/summary?fromServiceDate=soon", nil)
	require.Equal(t, http.StatusBadRequest, res.Code)

	res = api.request(http.MethodGet, "/v1/capacity_requests/paged?fromServiceDate=2025-10-02&toServiceDate=2025-10-02", nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "1", res.Header().Get(schema.HeaderTotalCount))
}

func TestOffers_Lifecycle(t *testing.T) {
	api := newTestAPI(t)
	createProviders(t, api, 8)
	veh := createVehicle(t, api, 7, "C3X-700")

	req := createCapacityRequest(t, api, map[string]any{"onlyTargetProvider": true, "providerId": 7})

	body := map[string]any{
		"capacityRequestId": req.ID,
		"providerId":        7,
		"vehicleId":         veh.ID,
		"offeredWeightKg":   1200.5,
		"price":             350,
	}
	res := api.request(http.MethodPost, "/v1/vehicle_offers", body)
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
	created := decode[offer.Offer](t, res)
	assert.Equal(t, offer.StatusDraft, created.Status)
	assert.Equal(t, offer.DefaultCurrency, created.Currency)

	res = api.request(http.MethodPost, "/v1/vehicle_offers", body)
	require.Equal(t, http.StatusConflict, res.Code)

	body["capacityRequestId"] = 999
	res = api.request(http.MethodPost, "/v1/vehicle_offers", body)
	require.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, []string{"offer.unknownCapacityRequest"}, errorTypes(t, res))

	res = api.request(http.MethodGet, "/v1/vehicle_offers/paged?visibleForProvider=true&providerId=8", nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "0", res.Header().Get(schema.HeaderTotalCount))

	res = api.request(http.MethodGet, "/v1/vehicle_offers/by_provider/7", nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "1", res.Header().Get(schema.HeaderTotalCount))

	target := fmt.Sprintf("/v1/vehicle_offers/%d/decide", created.ID)
	res = api.request(http.MethodPut, target, map[string]any{"status": "Sent"})
	require.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, []string{"validation.requestBody.parameter.invalidValue"}, errorTypes(t, res))

	res = api.request(http.MethodPut, target, map[string]any{"status": "Accepted", "decidedBy": " ops "})
	require.Equal(t, http.StatusOK, res.Code)
	decided := decode[offer.Offer](t, res)
	assert.Equal(t, offer.StatusAccepted, decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, "ops", *decided.DecidedBy)
	assert.NotNil(t, decided.DecisionAt)

	res = api.request(http.MethodPut, target, map[string]any{"status": "Rejected"})
	require.Equal(t, http.StatusConflict, res.Code)
	assert.Equal(t, []string{"offer.alreadyDecided"}, errorTypes(t, res))

	res = api.request(http.MethodPut, "/v1/vehicle_offers/999/decide", map[string]any{"status": "Rejected"})
	require.Equal(t, http.StatusNotFound, res.Code)
}

func TestCreate_UnknownReference(t *testing.T) {
	api := newTestAPI(t)
	createProviders(t, api, 1)

	res := api.request(http.MethodPost, "/v1/vehicles", map[string]any{"providerId": 42, "plate": "XYZ-001"})
	require.Equal(t, http.StatusBadRequest, res.Code, res.Body.String())
	assert.Equal(t, []string{"validation.requestBody.unknownReference"}, errorTypes(t, res))

	res = api.request(http.MethodPost, "/v1/drivers", map[string]any{"fullName": "Ana Quispe", "providerId": 42})
	require.Equal(t, http.StatusBadRequest, res.Code, res.Body.String())
	assert.Equal(t, []string{"validation.requestBody.unknownReference"}, errorTypes(t, res))

	req := createCapacityRequest(t, api, map[string]any{})
	res = api.request(http.MethodPost, "/v1/vehicle_offers", map[string]any{
		"capacityRequestId": req.ID,
		"providerId":        1,
		"vehicleId":         404,
		"price":             100,
	})
	require.Equal(t, http.StatusBadRequest, res.Code, res.Body.String())
	assert.Equal(t, []string{"validation.requestBody.unknownReference"}, errorTypes(t, res))

	res = api.request(http.MethodPost, "/v1/capacity_requests", map[string]any{
		"serviceDate":      "2025-10-01T00:00:00Z",
		"requiredVehicles": 1,
		"providerId":       42,
	})
	require.Equal(t, http.StatusBadRequest, res.Code, res.Body.String())
	assert.Equal(t, []string{"validation.requestBody.unknownReference"}, errorTypes(t, res))
}

func TestProviders_DeleteCascades(t *testing.T) {
	api := newTestAPI(t)
	createProviders(t, api, 2)
	createVehicle(t, api, 1, "AAA-111")
	createVehicle(t, api, 2, "BBB-222")
	req := createCapacityRequest(t, api, map[string]any{"onlyTargetProvider": true, "providerId": 1})

	res := api.request(http.MethodDelete, "/v1/providers/1", nil)
	require.Equal(t, http.StatusNoContent, res.Code)

	res = api.request(http.MethodGet, "/v1/vehicles/paged", nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "1", res.Header().Get(schema.HeaderTotalCount))

	res = api.request(http.MethodGet, fmt.Sprintf("/v1/capacity_requests/%d", req.ID), nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Nil(t, decode[capacity.Request](t, res).ProviderID)
}

func TestListings_MalformedProviderReportedOnce(t *testing.T) {
	api := newTestAPI(t)

	for _, target := range []string{
		"/v1/vehicle_offers/paged?providerId=abc&visibleForProvider=true",
		"/v1/capacity_requests/paged?providerId=abc&visibleForProvider=true",
	} {
		res := api.request(http.MethodGet, target, nil)
		require.Equal(t, http.StatusBadRequest, res.Code, target)
		assert.Equal(t, []string{"validation.query.parameter.invalidType"}, errorTypes(t, res), target)
	}
}

func TestCancelledRequest(t *testing.T) {
	api := newTestAPI(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := api.do(ctx, http.MethodGet, "/v1/drivers/paged", nil)
	require.Equal(t, statusClientClosedRequest, res.Code)
	assert.Equal(t, []string{"generic.cancelled"}, errorTypes(t, res))
}

func TestRouting(t *testing.T) {
	api := newTestAPI(t)

	res := api.request(http.MethodGet, "/v1/unknown", nil)
	require.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, []string{"generic.notFound"}, errorTypes(t, res))

	res = api.request(http.MethodPatch, "/v1/providers", nil)
	require.Equal(t, http.StatusMethodNotAllowed, res.Code)

	res = api.request(http.MethodGet, "/v1/drivers/paged", nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.NotEmpty(t, res.Header().Get(headerRequestID))
}

func TestMetricsEndpoint(t *testing.T) {
	api := newTestAPI(t)

	require.Equal(t, http.StatusOK, api.request(http.MethodGet, "/v1/orders/paged", nil).Code)
	require.Equal(t, http.StatusBadRequest, api.request(http.MethodGet, "/v1/orders/paged?status=x", nil).Code)

	res := api.request(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `route_listing_requests_total{code="200",entity="orders"} 1`)
	assert.Contains(t, res.Body.String(), `route_listing_requests_total{code="400",entity="orders"} 1`)
}
