package capacity

import (
	"context"
	"time"

	"github.com/cfelipe-app/Route/internal/query"
)

// Repository defines the capacity request repository API
type Repository interface {
	// Paged retrieves a page of capacity requests matching a filter
	Paged(ctx context.Context, filter *Filter, request *query.Request) (*query.Page[*Request], error)

	// GetByID retrieves a capacity request by its ID
	GetByID(ctx context.Context, id int64) (*Request, error)

	// Create creates a new capacity request
	Create(ctx context.Context, create *Create) (*Request, error)

	// UpdateStatus sets the status of a capacity request.
	// A nil request is returned if there is no capacity request with the given ID.
	UpdateStatus(ctx context.Context, id int64, status Status) (*Request, error)

	// Summary counts the capacity requests per status whose service date lies within a window of days.
	// Both bounds are optional.
	Summary(ctx context.Context, from, to *time.Time) (*Summary, error)

	// Delete deletes a capacity request by its ID
	Delete(ctx context.Context, id int64) error
}

// Create is used to create a new capacity request
type Create struct {
	ServiceDate        time.Time
	Zone               *string
	WindowStart        *string
	WindowEnd          *string
	RequiredVehicles   int
	TotalWeightKg      float64
	TotalVolumeM3      float64
	Status             *Status
	CreatedBy          *string
	OnlyTargetProvider bool
	ProviderID         *int64
}

// Filter is used to query capacity requests based on a filter
type Filter struct {
	Status          *Status
	ServiceDateFrom *time.Time
	ServiceDateTo   *time.Time

	// ViewerID restricts the result to the requests visible to a provider
	ViewerID *int64
}

// Conditions translates the filter into shaping conditions
func (filter *Filter) Conditions() []query.Condition {
	if filter == nil {
		return nil
	}
	return []query.Condition{
		query.Equal{Field: "status", Value: filter.Status},
		query.DayRange{Field: "serviceDate", From: filter.ServiceDateFrom, To: filter.ServiceDateTo},
		query.Visibility{
			PrivateField: "onlyTargetProvider",
			TargetField:  "providerId",
			ViewerID:     filter.ViewerID,
			Enabled:      true,
		},
	}
}

// SummaryConditions returns the conditions restricting a summary to a window of service dates
func SummaryConditions(from, to *time.Time) []query.Condition {
	return []query.Condition{
		query.DayRange{Field: "serviceDate", From: from, To: to},
	}
}
