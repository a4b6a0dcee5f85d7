package mysql

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"time"

	"github.com/cfelipe-app/Route/internal/capacity"
	"github.com/cfelipe-app/Route/internal/driver"
	"github.com/cfelipe-app/Route/internal/offer"
	"github.com/cfelipe-app/Route/internal/order"
	"github.com/cfelipe-app/Route/internal/provider"
	"github.com/cfelipe-app/Route/internal/storage"
	"github.com/cfelipe-app/Route/internal/storage/sqlstore"
	"github.com/cfelipe-app/Route/internal/vehicle"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Driver represents the MySQL storage driver implementation
type Driver struct {
	dsn              string
	db               *sql.DB
	providers        *ProviderRepository
	vehicles         *VehicleRepository
	drivers          *DriverRepository
	orders           *OrderRepository
	capacityRequests *CapacityRequestRepository
	offers           *OfferRepository
}

var _ storage.Driver = (*Driver)(nil)

// New creates a new empty MySQL storage driver.
// Use Initialize to open the database connection and initialize the repository implementations.
func New(dsn string) *Driver {
	return &Driver{
		dsn: dsn,
	}
}

// Initialize opens the database connection, migrates the database and initializes the repository implementations.
// Timestamps are always parsed and stored in UTC.
func (driver *Driver) Initialize(ctx context.Context) error {
	cfg, err := gomysql.ParseDSN(driver.dsn)
	if err != nil {
		return err
	}
	cfg.ParseTime = true
	cfg.MultiStatements = true
	cfg.ClientFoundRows = true
	cfg.Loc = time.UTC

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return err
	}

	// Perform SQL migrations
	if err := migrateUp(db); err != nil {
		db.Close()
		return err
	}

	driver.db = db
	driver.providers = &ProviderRepository{table: newTable(db, sqlstore.Providers)}
	driver.vehicles = &VehicleRepository{table: newTable(db, sqlstore.Vehicles)}
	driver.drivers = &DriverRepository{table: newTable(db, sqlstore.Drivers)}
	driver.orders = &OrderRepository{table: newTable(db, sqlstore.Orders)}
	driver.capacityRequests = &CapacityRequestRepository{table: newTable(db, sqlstore.CapacityRequests)}
	driver.offers = &OfferRepository{
		table:    newTable(db, sqlstore.Offers),
		requests: newTable(db, sqlstore.CapacityRequests),
	}

	return nil
}

func migrateUp(db *sql.DB) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	target, err := migratemysql.WithInstance(db, &migratemysql.Config{})
	if err != nil {
		return err
	}
	migrator, err := migrate.NewWithInstance("iofs", source, "mysql", target)
	if err != nil {
		return err
	}
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Providers provides the MySQL provider repository implementation
func (driver *Driver) Providers() provider.Repository {
	return driver.providers
}

// Vehicles provides the MySQL vehicle repository implementation
func (driver *Driver) Vehicles() vehicle.Repository {
	return driver.vehicles
}

// Drivers provides the MySQL driver repository implementation
func (driver *Driver) Drivers() driver.Repository {
	return driver.drivers
}

// Orders provides the MySQL order repository implementation
func (driver *Driver) Orders() order.Repository {
	return driver.orders
}

// CapacityRequests provides the MySQL capacity request repository implementation
func (driver *Driver) CapacityRequests() capacity.Repository {
	return driver.capacityRequests
}

// Offers provides the MySQL vehicle offer repository implementation
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
