package memory

import (
	"context"

	"github.com/cfelipe-app/Route/internal/query"
	"github.com/cfelipe-app/Route/internal/storage"
	"github.com/cfelipe-app/Route/internal/vehicle"
	"github.com/hashicorp/go-memdb"
)

// VehicleRepository implements the vehicle.Repository interface using go-memdb
type VehicleRepository struct {
	*table[vehicle.Vehicle]
}

var _ vehicle.Repository = (*VehicleRepository)(nil)

func newVehicleRepository(db *memdb.MemDB) *VehicleRepository {
	repo := &VehicleRepository{
		table: newTable(db, tableVehicles, vehicle.Fields),
	}
	repo.cascade = cascadeVehicle
	return repo
}

// Paged retrieves a page of vehicles matching a filter
func (repo *VehicleRepository) Paged(ctx context.Context, filter *vehicle.Filter, request *query.Request) (*query.Page[*vehicle.Vehicle], error) {
	return repo.paged(ctx, filter.Conditions(), request)
}

// Create creates a new vehicle.
// storage.ErrDuplicate is returned if the plate is already taken and storage.ErrUnknownReference if the provider does not exist.
func (repo *VehicleRepository) Create(_ context.Context, create *vehicle.Create) (*vehicle.Vehicle, error) {
	obj := vehicle.New(create)

	txn := repo.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(tableVehicles, "plate", obj.Plate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, storage.ErrDuplicate
	}
	if err := requireRecord(txn, tableProviders, obj.ProviderID); err != nil {
		return nil, err
	}

	obj.ID = repo.nextID()
	if err := repo.insert(txn, obj); err != nil {
		return nil, err
	}

	txn.Commit()
	return obj, nil
}
