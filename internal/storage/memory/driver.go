package memory

import (
	"context"
	"time"

	"github.com/cfelipe-app/Route/internal/capacity"
	"github.com/cfelipe-app/Route/internal/driver"
	"github.com/cfelipe-app/Route/internal/offer"
	"github.com/cfelipe-app/Route/internal/order"
	"github.com/cfelipe-app/Route/internal/provider"
	"github.com/cfelipe-app/Route/internal/storage"
	"github.com/cfelipe-app/Route/internal/vehicle"
	"github.com/hashicorp/go-memdb"
)

const (
	tableProviders        = "providers"
	tableVehicles         = "vehicles"
	tableDrivers          = "drivers"
	tableOrders           = "orders"
	tableCapacityRequests = "capacity_requests"
	tableOffers           = "vehicle_offers"
)

func idIndex() map[string]*memdb.IndexSchema {
	return map[string]*memdb.IndexSchema{
		"id": {
			Name:    "id",
			Unique:  true,
			Indexer: &memdb.IntFieldIndex{Field: "ID"},
		},
	}
}

var dbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		tableProviders: {
			Name:    tableProviders,
			Indexes: idIndex(),
		},
		tableVehicles: {
			Name: tableVehicles,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.IntFieldIndex{Field: "ID"},
				},
				"plate": {
					Name:    "plate",
					Unique:  false,
					Indexer: &memdb.StringFieldIndex{Field: "Plate"},
				},
			},
		},
		tableDrivers: {
			Name:    tableDrivers,
			Indexes: idIndex(),
		},
		tableOrders: {
			Name:    tableOrders,
			Indexes: idIndex(),
		},
		tableCapacityRequests: {
			Name: tableCapacityRequests,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.IntFieldIndex{Field: "ID"},
				},
			},
		},
		tableOffers: {
			Name: tableOffers,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.IntFieldIndex{Field: "ID"},
				},
				"request_vehicle": {
					Name:   "request_vehicle",
					Unique: false,
					Indexer: &memdb.CompoundIndex{
						Indexes: []memdb.Indexer{
							&memdb.IntFieldIndex{Field: "CapacityRequestID"},
							&memdb.IntFieldIndex{Field: "VehicleID"},
						},
					},
				},
			},
		},
	},
}

// Driver represents the in-memory storage driver built using hashicorp/go-memdb.
// Records do not survive a restart; it is meant for local development and tests.
type Driver struct {
	now              func() time.Time
	db               *memdb.MemDB
	providers        *ProviderRepository
	vehicles         *VehicleRepository
	drivers          *DriverRepository
	orders           *OrderRepository
	capacityRequests *CapacityRequestRepository
	offers           *OfferRepository
}

var _ storage.Driver = (*Driver)(nil)

// New creates a new empty in-memory storage driver
func New() *Driver {
	return NewWithClock(time.Now)
}

// NewWithClock creates a new empty in-memory storage driver that uses the given clock to timestamp new records
func NewWithClock(now func() time.Time) *Driver {
	return &Driver{
		now: now,
	}
}

// Initialize creates the in-memory database and initializes the repository implementations
func (driver *Driver) Initialize(_ context.Context) error {
	db, err := memdb.NewMemDB(dbSchema)
	if err != nil {
		return err
	}
	driver.db = db

	driver.providers = newProviderRepository(db, driver.now)
	driver.vehicles = newVehicleRepository(db)
	driver.drivers = newDriverRepository(db, driver.now)
	driver.orders = newOrderRepository(db, driver.now)
	driver.capacityRequests = newCapacityRequestRepository(db, driver.now)
	driver.offers = newOfferRepository(db, driver.capacityRequests.table, driver.now)

	return nil
}

// Providers provides the in-memory provider repository implementation
func (driver *Driver) Providers() provider.Repository {
	return driver.providers
}

// Vehicles provides the in-memory vehicle repository implementation
func (driver *Driver) Vehicles() vehicle.Repository {
	return driver.vehicles
}

// Drivers provides the in-memory driver repository implementation
func (driver *Driver) Drivers() driver.Repository {
	return driver.drivers
}

// Orders provides the in-memory order repository implementation
func (driver *Driver) Orders() order.Repository {
	return driver.orders
}

// CapacityRequests provides the in-memory capacity request repository implementation
func (driver *Driver) CapacityRequests() capacity.Repository {
	return driver.capacityRequests
}

// Offers provides the in-memory vehicle offer repository implementation
func (driver *Driver) Offers() offer.Repository {
	return driver.offers
}

// Close discards the repository implementations and the in-memory database
func (driver *Driver) Close() {
	driver.providers = nil
	driver.vehicles = nil
	driver.drivers = nil
	driver.orders = nil
	driver.capacityRequests = nil
	driver.offers = nil
	driver.db = nil
}
