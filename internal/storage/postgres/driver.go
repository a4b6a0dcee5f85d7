package postgres

import (
	"context"
	"embed"
	"errors"

	"github.com/cfelipe-app/Route/internal/capacity"
	"github.com/cfelipe-app/Route/internal/driver"
	"github.com/cfelipe-app/Route/internal/offer"
	"github.com/cfelipe-app/Route/internal/order"
	"github.com/cfelipe-app/Route/internal/provider"
	"github.com/cfelipe-app/Route/internal/storage"
	"github.com/cfelipe-app/Route/internal/storage/sqlstore"
	"github.com/cfelipe-app/Route/internal/vehicle"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v4/pgxpool"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Driver represents the PostgreSQL storage driver implementation
type Driver struct {
	dsn              string
	db               *pgxpool.Pool
	providers        *ProviderRepository
	vehicles         *VehicleRepository
	drivers          *DriverRepository
	orders           *OrderRepository
	capacityRequests *CapacityRequestRepository
	offers           *OfferRepository
}

var _ storage.Driver = (*Driver)(nil)

// New creates a new empty PostgreSQL storage driver.
// Use Initialize to open the database connection and initialize the repository implementations.
func New(dsn string) *Driver {
	return &Driver{
		dsn: dsn,
	}
}

// Initialize opens the database connection, migrates the database and initializes the repository implementations
func (driver *Driver) Initialize(ctx context.Context) error {
	// Perform SQL migrations
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	migrator, err := migrate.NewWithSourceInstance("iofs", source, driver.dsn)
	if err != nil {
		return err
	}
	defer migrator.Close()
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	// Initialize the database connection pool
	pool, err := pgxpool.Connect(ctx, driver.dsn)
	if err != nil {
		return err
	}
	driver.db = pool

	// Initialize the repository implementations
	driver.providers = &ProviderRepository{table: newTable(pool, sqlstore.Providers)}
	driver.vehicles = &VehicleRepository{table: newTable(pool, sqlstore.Vehicles)}
	driver.drivers = &DriverRepository{table: newTable(pool, sqlstore.Drivers)}
	driver.orders = &OrderRepository{table: newTable(pool, sqlstore.Orders)}
	driver.capacityRequests = &CapacityRequestRepository{table: newTable(pool, sqlstore.CapacityRequests)}
	driver.offers = &OfferRepository{
		table:    newTable(pool, sqlstore.Offers),
		requests: newTable(pool, sqlstore.CapacityRequests),
	}

	return nil
}

// Providers provides the PostgreSQL provider repository implementation
func (driver *Driver) Providers() provider.Repository {
	return driver.providers
}

// Vehicles provides the PostgreSQL vehicle repository implementation
func (driver *Driver) Vehicles() vehicle.Repository {
	return driver.vehicles
}

// Drivers provides the PostgreSQL driver repository implementation
func (driver *Driver) Drivers() driver.Repository {
	return driver.drivers
}

// Orders provides the PostgreSQL order repository implementation
func (driver *Driver) Orders() order.Repository {
	return driver.orders
}

// CapacityRequests provides the PostgreSQL capacity request repository implementation
func (driver *Driver) CapacityRequests() capacity.Repository {
	return driver.capacityRequests
}

// Offers provides the PostgreSQL vehicle offer repository implementation
func (driver *Driver) Offers() offer.Repository {
	return driver.offers
}

// Close discards the repository implementations and closes the database connection
func (driver *Driver) Close() {
	driver.providers = nil
	driver.vehicles = nil
	driver.drivers = nil
	driver.orders = nil
	driver.capacityRequests = nil
	driver.offers = nil

	driver.db.Close()
	driver.db = nil
}
