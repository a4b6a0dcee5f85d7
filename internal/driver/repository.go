package driver

import (
	"context"

	"github.com/cfelipe-app/Route/internal/query"
)

// Repository defines the driver repository API
type Repository interface {
	// Paged retrieves a page of drivers matching a filter
	Paged(ctx context.Context, filter *Filter, request *query.Request) (*query.Page[*Driver], error)

	// GetByID retrieves a driver by their ID
	GetByID(ctx context.Context, id int64) (*Driver, error)

	// Create creates a new driver
	Create(ctx context.Context, create *Create) (*Driver, error)

	// Delete deletes a driver by their ID
	Delete(ctx context.Context, id int64) error
}

// Create is used to create a new driver
type Create struct {
	FullName      string
	DocumentID    *string
	Phone         *string
	Email         *string
	LicenseNumber *string
	LicenseClass  *string
	IsActive      *bool
	ProviderID    int64
}

// Filter is used to query drivers based on a filter
type Filter struct {
	ProviderID *int64
	IsActive   *bool
}

// Conditions translates the filter into shaping conditions
func (filter *Filter) Conditions() []query.Condition {
	if filter == nil {
		return nil
	}
	return []query.Condition{
		query.Equal{Field: "providerId", Value: filter.ProviderID},
		query.Equal{Field: "isActive", Value: filter.IsActive},
	}
}
