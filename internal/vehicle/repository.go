package vehicle

import (
	"context"

	"github.com/cfelipe-app/Route/internal/query"
)

// Repository defines the vehicle repository API
type Repository interface {
	// Paged retrieves a page of vehicles matching a filter
	Paged(ctx context.Context, filter *Filter, request *query.Request) (*query.Page[*Vehicle], error)

	// GetByID retrieves a vehicle by its ID
	GetByID(ctx context.Context, id int64) (*Vehicle, error)

	// Create creates a new vehicle
	Create(ctx context.Context, create *Create) (*Vehicle, error)

	// Delete deletes a vehicle by its ID
	Delete(ctx context.Context, id int64) error
}

// Create is used to create a new vehicle
type Create struct {
	ProviderID           int64
	Plate                string
	Model                *string
	Brand                *string
	CapacityKg           float64
	CapacityVolM3        float64
	Seats                *int
	Type                 *string
	IsActive             *bool
	CapacityTonnageLabel *string
}

// Filter is used to query vehicles based on a filter
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
