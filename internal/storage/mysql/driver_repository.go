package mysql

import (
	"context"
	"time"

	"github.com/cfelipe-app/Route/internal/driver"
	"github.com/cfelipe-app/Route/internal/query"
)

// DriverRepository implements the driver.Repository interface using MySQL
type DriverRepository struct {
	*table[*driver.Driver]
}

var _ driver.Repository = (*DriverRepository)(nil)

// Paged retrieves a page of drivers matching a filter
func (repo *DriverRepository) Paged(ctx context.Context, filter *driver.Filter, request *query.Request) (*query.Page[*driver.Driver], error) {
	return repo.paged(ctx, filter.Conditions(), request)
}

// Create creates a new driver
func (repo *DriverRepository) Create(ctx context.Context, create *driver.Create) (*driver.Driver, error) {
	obj := driver.New(create, time.Now())
	id, err := repo.insert(ctx, repo.db, obj)
	if err != nil {
		return nil, err
	}
	obj.ID = id
	return obj, nil
}
