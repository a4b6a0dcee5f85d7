package provider

import (
	"context"
	"time"

	"github.com/cfelipe-app/Route/internal/query"
)

// Repository defines the provider repository API
type Repository interface {
	// Paged retrieves a page of providers matching a filter
	Paged(ctx context.Context, filter *Filter, request *query.Request) (*query.Page[*Provider], error)

	// GetByID retrieves a provider by its ID
	GetByID(ctx context.Context, id int64) (*Provider, error)

	// Create creates a new provider
	Create(ctx context.Context, create *Create) (*Provider, error)

	// Delete deletes a provider by its ID
	Delete(ctx context.Context, id int64) error
}

// Create is used to create a new provider
type Create struct {
	Name        string
	TaxID       string
	ContactName *string
	Phone       *string
	Email       *string
	Address     *string
	IsActive    *bool
}

// Filter is used to query providers based on a filter
type Filter struct {
	IsActive    *bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// Conditions translates the filter into shaping conditions
func (filter *Filter) Conditions() []query.Condition {
	if filter == nil {
		return nil
	}
	return []query.Condition{
		query.Equal{Field: "isActive", Value: filter.IsActive},
		query.DayRange{Field: "createdAt", From: filter.CreatedFrom, To: filter.CreatedTo},
	}
}
