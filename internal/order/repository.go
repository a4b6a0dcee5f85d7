package order

import (
	"context"
	"time"

	"github.com/cfelipe-app/Route/internal/query"
)

// Repository defines the order repository API
type Repository interface {
	// Paged retrieves a page of orders matching a filter
	Paged(ctx context.Context, filter *Filter, request *query.Request) (*query.Page[*Order], error)

	// GetByID retrieves an order by its ID
	GetByID(ctx context.Context, id int64) (*Order, error)

	// Create creates a new order
	Create(ctx context.Context, create *Create) (*Order, error)

	// Delete deletes an order by its ID
	Delete(ctx context.Context, id int64) error
}

// Create is used to create a new order
type Create struct {
	ExternalOrderNo string
	CustomerName    string
	CustomerTaxID   *string
	Address         string
	District        *string
	Lat             *float64
	Lng             *float64
	WeightKg        float64
	VolumeM3        float64
	Amount          float64
	Status          *Status
	ScheduledAt     *time.Time
}

// Filter is used to query orders based on a filter
type Filter struct {
	Status        *Status
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	ScheduledFrom *time.Time
	ScheduledTo   *time.Time
}

// Conditions translates the filter into shaping conditions
func (filter *Filter) Conditions() []query.Condition {
	if filter == nil {
		return nil
	}
	return []query.Condition{
		query.Equal{Field: "status", Value: filter.Status},
		query.DayRange{Field: "createdAt", From: filter.CreatedFrom, To: filter.CreatedTo},
		query.DayRange{Field: "scheduledAt", From: filter.ScheduledFrom, To: filter.ScheduledTo},
	}
}
