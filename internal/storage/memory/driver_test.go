package memory

import (
	"context"
	"testing"
	"time"

	"github.com/cfelipe-app/Route/internal/capacity"
	drivers "github.com/cfelipe-app/Route/internal/driver"
	"github.com/cfelipe-app/Route/internal/offer"
	"github.com/cfelipe-app/Route/internal/order"
	"github.com/cfelipe-app/Route/internal/provider"
	"github.com/cfelipe-app/Route/internal/query"
	"github.com/cfelipe-app/Route/internal/storage"
	"github.com/cfelipe-app/Route/internal/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDriver(t *testing.T, now time.Time) *Driver {
	t.Helper()
	driver := NewWithClock(func() time.Time { return now })
	require.NoError(t, driver.Initialize(context.Background()))
	t.Cleanup(driver.Close)
	return driver
}

func ptr[T any](value T) *T {
	return &value
}

// seedProviders creates n providers; their IDs are 1 to n
func seedProviders(t *testing.T, driver *Driver, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := driver.Providers().Create(context.Background(), &provider.Create{Name: "Provider", TaxID: "20100"})
		require.NoError(t, err)
	}
}

func ids[T any](items []*T, id func(*T) int64) []int64 {
	res := make([]int64, 0, len(items))
	for _, item := range items {
		res = append(res, id(item))
	}
	return res
}

func TestCapacityRequests_StatusFilterAndSummary(t *testing.T) {
	ctx := context.Background()
	driver := newDriver(t, time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC))
	repo := driver.CapacityRequests()

	for i := 0; i < 25; i++ {
		status := capacity.StatusClosed
		if i < 10 {
			status = capacity.StatusOpen
		}
		_, err := repo.Create(ctx, &capacity.Create{
			ServiceDate:      time.Date(2025, 10, 1+i%5, 0, 0, 0, 0, time.UTC),
			RequiredVehicles: 1,
			Status:           &status,
		})
		require.NoError(t, err)
	}

	open := capacity.StatusOpen
	page, err := repo.Paged(ctx, &capacity.Filter{Status: &open}, &query.Request{Page: 1, PageSize: 10, SortBy: "id"})
	require.NoError(t, err)
	assert.Equal(t, uint64(10), page.Total)
	assert.Len(t, page.Items, 10)
	for _, item := range page.Items {
		assert.Equal(t, capacity.StatusOpen, item.Status)
	}

	closed := capacity.StatusClosed
	page, err = repo.Paged(ctx, &capacity.Filter{Status: &closed}, &query.Request{Page: 2, PageSize: 10, SortBy: "id"})
	require.NoError(t, err)
	assert.Equal(t, uint64(15), page.Total)
	assert.Equal(t, []int64{21, 22, 23, 24, 25}, ids(page.Items, func(obj *capacity.Request) int64 { return obj.ID }))

	summary, err := repo.Summary(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(25), summary.Total)
	assert.Equal(t, uint64(10), summary.ByStatus[capacity.StatusOpen])
	assert.Equal(t, uint64(15), summary.ByStatus[capacity.StatusClosed])
	assert.Zero(t, summary.ByStatus[capacity.StatusExpired])

	// service dates cycle through Oct 1st to 5th; i%5 == 0 lands on Oct 1st (ids 1, 6 open; 11, 16, 21 closed)
	day := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	summary, err = repo.Summary(ctx, &day, &day)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), summary.Total)
	assert.Equal(t, uint64(2), summary.ByStatus[capacity.StatusOpen])
	assert.Equal(t, uint64(3), summary.ByStatus[capacity.StatusClosed])
}

func TestCapacityRequests_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	driver := newDriver(t, time.Now())
	repo := driver.CapacityRequests()

	obj, err := repo.Create(ctx, &capacity.Create{ServiceDate: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, capacity.StatusOpen, obj.Status)

	updated, err := repo.UpdateStatus(ctx, obj.ID, capacity.StatusCancelled)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, capacity.StatusCancelled, updated.Status)

	fetched, err := repo.GetByID(ctx, obj.ID)
	require.NoError(t, err)
	assert.Equal(t, capacity.StatusCancelled, fetched.Status)

	missing, err := repo.UpdateStatus(ctx, 404, capacity.StatusClosed)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestOffers_VisibilityAndUniqueness(t *testing.T) {
	ctx := context.Background()
	driver := newDriver(t, time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC))
	seedProviders(t, driver, 9)
	_, err := driver.Vehicles().Create(ctx, &vehicle.Create{ProviderID: 5, Plate: "V-1"})
	require.NoError(t, err)

	public, err := driver.CapacityRequests().Create(ctx, &capacity.Create{ServiceDate: time.Now()})
	require.NoError(t, err)
	private, err := driver.CapacityRequests().Create(ctx, &capacity.Create{
		ServiceDate:        time.Now(),
		OnlyTargetProvider: true,
		ProviderID:         ptr(int64(5)),
	})
	require.NoError(t, err)
	foreign, err := driver.CapacityRequests().Create(ctx, &capacity.Create{
		ServiceDate:        time.Now(),
		OnlyTargetProvider: true,
		ProviderID:         ptr(int64(6)),
	})
	require.NoError(t, err)

	for i, req := range []*capacity.Request{public, private, foreign} {
		_, err := driver.Offers().Create(ctx, &offer.Create{
			CapacityRequestID: req.ID,
			ProviderID:        int64(5 + i),
			VehicleID:         1,
			Price:             100,
		})
		require.NoError(t, err)
	}

	_, err = driver.Offers().Create(ctx, &offer.Create{CapacityRequestID: public.ID, ProviderID: 9, VehicleID: 1})
	assert.ErrorIs(t, err, storage.ErrDuplicate)

	_, err = driver.Offers().Create(ctx, &offer.Create{CapacityRequestID: 999, ProviderID: 9, VehicleID: 1})
	assert.ErrorIs(t, err, offer.ErrUnknownRequest)

	page, err := driver.Offers().Paged(ctx, &offer.Filter{ViewerID: ptr(int64(5))}, &query.Request{Page: 1, PageSize: 10, SortBy: "id"})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), page.Total)
	assert.Equal(t, []int64{1, 2}, ids(page.Items, func(obj *offer.Offer) int64 { return obj.ID }))

	page, err = driver.Offers().Paged(ctx, nil, &query.Request{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), page.Total)

	requests, err := driver.CapacityRequests().Paged(ctx, &capacity.Filter{ViewerID: ptr(int64(6))}, &query.Request{Page: 1, PageSize: 10, SortBy: "id"})
	require.NoError(t, err)
	assert.Equal(t, []int64{public.ID, foreign.ID}, ids(requests.Items, func(obj *capacity.Request) int64 { return obj.ID }))
}

func TestOffers_Decide(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	driver := newDriver(t, now)
	seedProviders(t, driver, 1)
	_, err := driver.Vehicles().Create(ctx, &vehicle.Create{ProviderID: 1, Plate: "V-1"})
	require.NoError(t, err)

	req, err := driver.CapacityRequests().Create(ctx, &capacity.Create{ServiceDate: now})
	require.NoError(t, err)
	obj, err := driver.Offers().Create(ctx, &offer.Create{CapacityRequestID: req.ID, ProviderID: 1, VehicleID: 1})
	require.NoError(t, err)

	decided, err := driver.Offers().Decide(ctx, obj.ID, &offer.Decision{Accept: true, DecidedBy: ptr("dispatcher"), At: now})
	require.NoError(t, err)
	assert.Equal(t, offer.StatusAccepted, decided.Status)
	require.NotNil(t, decided.DecisionAt)
	assert.Equal(t, now, *decided.DecisionAt)

	_, err = driver.Offers().Decide(ctx, obj.ID, &offer.Decision{Accept: false, At: now})
	assert.ErrorIs(t, err, offer.ErrAlreadyDecided)

	missing, err := driver.Offers().Decide(ctx, 404, &offer.Decision{Accept: true, At: now})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestVehicles_DuplicatePlate(t *testing.T) {
	ctx := context.Background()
	driver := newDriver(t, time.Now())
	seedProviders(t, driver, 2)

	obj, err := driver.Vehicles().Create(ctx, &vehicle.Create{ProviderID: 1, Plate: "abc-123"})
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", obj.Plate)
	assert.Equal(t, vehicle.DefaultSeats, obj.Seats)
	assert.True(t, obj.IsActive)

	_, err = driver.Vehicles().Create(ctx, &vehicle.Create{ProviderID: 2, Plate: " ABC-123"})
	assert.ErrorIs(t, err, storage.ErrDuplicate)
}

func TestOrders_CreatedRangeAndSearch(t *testing.T) {
	ctx := context.Background()
	driver := newDriver(t, time.Date(2025, 10, 1, 23, 59, 0, 0, time.UTC))

	for _, name := range []string{"Bodega Sur", "Minimarket Norte", "bodega central"} {
		_, err := driver.Orders().Create(ctx, &order.Create{ExternalOrderNo: "X", CustomerName: name, Address: "Av. Lima"})
		require.NoError(t, err)
	}

	day := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	page, err := driver.Orders().Paged(ctx, &order.Filter{CreatedFrom: &day, CreatedTo: &day}, &query.Request{
		Term:     "BODEGA",
		Page:     1,
		PageSize: 10,
		SortBy:   "customerName",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), page.Total)
	assert.Equal(t, []int64{1, 3}, ids(page.Items, func(obj *order.Order) int64 { return obj.ID }))

	before := day.AddDate(0, 0, -1)
	page, err = driver.Orders().Paged(ctx, &order.Filter{CreatedTo: &before}, &query.Request{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.Empty(t, page.Items)
}

func TestProviders_ReturnsCopiesAndDeletes(t *testing.T) {
	ctx := context.Background()
	driver := newDriver(t, time.Now())
	repo := driver.Providers()

	obj, err := repo.Create(ctx, &provider.Create{Name: " Acme ", TaxID: "20123"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", obj.Name)

	obj.Name = "mutated"
	fetched, err := repo.GetByID(ctx, obj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", fetched.Name)

	require.NoError(t, repo.Delete(ctx, obj.ID))
	require.NoError(t, repo.Delete(ctx, obj.ID))
	fetched, err = repo.GetByID(ctx, obj.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestPaged_CancelledContext(t *testing.T) {
	driver := newDriver(t, time.Now())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	page, err := driver.Providers().Paged(ctx, nil, &query.Request{Page: 1, PageSize: 10})
	assert.Nil(t, page)
	assert.ErrorIs(t, err, query.ErrCancelled)
}

func TestCreate_UnknownReferences(t *testing.T) {
	ctx := context.Background()
	store := newDriver(t, time.Now())
	seedProviders(t, store, 1)

	_, err := store.Vehicles().Create(ctx, &vehicle.Create{ProviderID: 42, Plate: "V-1"})
	assert.ErrorIs(t, err, storage.ErrUnknownReference)
	_, err = store.Drivers().Create(ctx, &drivers.Create{FullName: "Ana", ProviderID: 42})
	assert.ErrorIs(t, err, storage.ErrUnknownReference)
	_, err = store.CapacityRequests().Create(ctx, &capacity.Create{ServiceDate: time.Now(), ProviderID: ptr(int64(42))})
	assert.ErrorIs(t, err, storage.ErrUnknownReference)

	// nothing was stored by the rejected transactions
	vehicles, err := store.Vehicles().Paged(ctx, nil, &query.Request{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Zero(t, vehicles.Total)

	req, err := store.CapacityRequests().Create(ctx, &capacity.Create{ServiceDate: time.Now()})
	require.NoError(t, err)
	_, err = store.Offers().Create(ctx, &offer.Create{CapacityRequestID: req.ID, ProviderID: 1, VehicleID: 42})
	assert.ErrorIs(t, err, storage.ErrUnknownReference)
	_, err = store.Offers().Create(ctx, &offer.Create{CapacityRequestID: req.ID, ProviderID: 42, VehicleID: 42})
	assert.ErrorIs(t, err, storage.ErrUnknownReference)

	veh, err := store.Vehicles().Create(ctx, &vehicle.Create{ProviderID: 1, Plate: "V-1"})
	require.NoError(t, err)
	_, err = store.Offers().Create(ctx, &offer.Create{CapacityRequestID: req.ID, ProviderID: 1, VehicleID: veh.ID})
	assert.NoError(t, err)
}

func TestDelete_Cascades(t *testing.T) {
	ctx := context.Background()
	store := newDriver(t, time.Now())
	seedProviders(t, store, 2)

	kept, err := store.Vehicles().Create(ctx, &vehicle.Create{ProviderID: 2, Plate: "KEEP-1"})
	require.NoError(t, err)
	dropped, err := store.Vehicles().Create(ctx, &vehicle.Create{ProviderID: 1, Plate: "DROP-1"})
	require.NoError(t, err)
	_, err = store.Drivers().Create(ctx, &drivers.Create{FullName: "Ana", ProviderID: 1})
	require.NoError(t, err)
	_, err = store.Drivers().Create(ctx, &drivers.Create{FullName: "Luis", ProviderID: 2})
	require.NoError(t, err)

	targeted, err := store.CapacityRequests().Create(ctx, &capacity.Create{ServiceDate: time.Now(), ProviderID: ptr(int64(1))})
	require.NoError(t, err)
	other, err := store.CapacityRequests().Create(ctx, &capacity.Create{ServiceDate: time.Now()})
	require.NoError(t, err)

	// provider 2 offers provider 1's vehicle so only the vehicle cascade can remove it
	viaVehicle, err := store.Offers().Create(ctx, &offer.Create{CapacityRequestID: other.ID, ProviderID: 2, VehicleID: dropped.ID})
	require.NoError(t, err)
	viaRequest, err := store.Offers().Create(ctx, &offer.Create{CapacityRequestID: targeted.ID, ProviderID: 2, VehicleID: kept.ID})
	require.NoError(t, err)
	remaining, err := store.Offers().Create(ctx, &offer.Create{CapacityRequestID: other.ID, ProviderID: 2, VehicleID: kept.ID})
	require.NoError(t, err)

	require.NoError(t, store.Providers().Delete(ctx, 1))

	vehicles, err := store.Vehicles().Paged(ctx, nil, &query.Request{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []int64{kept.ID}, ids(vehicles.Items, func(obj *vehicle.Vehicle) int64 { return obj.ID }))

	remainingDrivers, err := store.Drivers().Paged(ctx, nil, &query.Request{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, remainingDrivers.Items, 1)
	assert.Equal(t, int64(2), remainingDrivers.Items[0].ProviderID)

	detached, err := store.CapacityRequests().GetByID(ctx, targeted.ID)
	require.NoError(t, err)
	require.NotNil(t, detached)
	assert.Nil(t, detached.ProviderID)

	gone, err := store.Offers().GetByID(ctx, viaVehicle.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	require.NoError(t, store.CapacityRequests().Delete(ctx, targeted.ID))
	gone, err = store.Offers().GetByID(ctx, viaRequest.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	offers, err := store.Offers().Paged(ctx, nil, &query.Request{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []int64{remaining.ID}, ids(offers.Items, func(obj *offer.Offer) int64 { return obj.ID }))
}
