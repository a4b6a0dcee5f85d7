package mysql

import (
	"context"

	"github.com/cfelipe-app/Route/internal/query"
	"github.com/cfelipe-app/Route/internal/vehicle"
)

// VehicleRepository implements the vehicle.Repository interface using MySQL
type VehicleRepository struct {
	*table[*vehicle.Vehicle]
}

var _ vehicle.Repository = (*VehicleRepository)(nil)

// Paged retrieves a page of vehicles matching a filter
func (repo *VehicleRepository) Paged(ctx context.Context, filter *vehicle.Filter, request *query.Request) (*query.Page[*vehicle.Vehicle], error) {
	return repo.paged(ctx, filter.Conditions(), request)
}

// Create creates a new vehicle; storage.ErrDuplicate is returned if the plate is already taken
func (repo *VehicleRepository) Create(ctx context.Context, create *vehicle.Create) (*vehicle.Vehicle, error) {
	obj := vehicle.New(create)
	id, err := repo.insert(ctx, repo.db, obj)
	if err != nil {
		return nil, err
	}
	obj.ID = id
	return obj, nil
}
