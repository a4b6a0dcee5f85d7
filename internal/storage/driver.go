package storage

import (
	"context"
	"errors"

	"github.com/cfelipe-app/Route/internal/capacity"
	"github.com/cfelipe-app/Route/internal/driver"
	"github.com/cfelipe-app/Route/internal/offer"
	"github.com/cfelipe-app/Route/internal/order"
	"github.com/cfelipe-app/Route/internal/provider"
	"github.com/cfelipe-app/Route/internal/vehicle"
)

var (
	// ErrDuplicate is returned when a record violates a uniqueness constraint
	ErrDuplicate = errors.New("record already exists")

	// ErrUnknownReference is returned when a record refers to another record that does not exist
	ErrUnknownReference = errors.New("referenced record does not exist")
)

// Driver represents a storage driver
type Driver interface {
	// Initialize initializes the storage driver (i.e. opens a database connection)
	Initialize(ctx context.Context) error

	// Providers provides a provider repository implementation
	Providers() provider.Repository

	// Vehicles provides a vehicle repository implementation
	Vehicles() vehicle.Repository

	// Drivers provides a driver repository implementation
	Drivers() driver.Repository

	// Orders provides an order repository implementation
	Orders() order.Repository

	// CapacityRequests provides a capacity request repository implementation
	CapacityRequests() capacity.Repository

	// Offers provides a vehicle offer repository implementation
	Offers() offer.Repository

	// Close closes the storage driver (i.e. closes a database connection)
	Close()
}
