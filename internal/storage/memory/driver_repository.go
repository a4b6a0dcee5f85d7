package memory

import (
	"context"
	"time"

	"github.com/cfelipe-app/Route/internal/driver"
	"github.com/cfelipe-app/Route/internal/query"
	"github.com/hashicorp/go-memdb"
)

// DriverRepository implements the driver.Repository interface using go-memdb
type DriverRepository struct {
	*table[driver.Driver]
	now func() time.Time
}

var _ driver.Repository = (*DriverRepository)(nil)

func newDriverRepository(db *memdb.MemDB, now func() time.Time) *DriverRepository {
	return &DriverRepository{
		table: newTable(db, tableDrivers, driver.Fields),
		now:   now,
	}
}

// Paged retrieves a page of drivers matching a filter
func (repo *DriverRepository) Paged(ctx context.Context, filter *driver.Filter, request *query.Request) (*query.Page[*driver.Driver], error) {
	return repo.paged(ctx, filter.Conditions(), request)
}

// Create creates a new driver; storage.ErrUnknownReference is returned if the provider does not exist
func (repo *DriverRepository) Create(_ context.Context, create *driver.Create) (*driver.Driver, error) {
	obj := driver.New(create, repo.now())

	txn := repo.db.Txn(true)
	defer txn.Abort()

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
