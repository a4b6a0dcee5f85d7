package memory

import (
	"context"
	"time"

	"github.com/cfelipe-app/Route/internal/order"
	"github.com/cfelipe-app/Route/internal/query"
	"github.com/hashicorp/go-memdb"
)

// OrderRepository implements the order.Repository interface using go-memdb
type OrderRepository struct {
	*table[order.Order]
	now func() time.Time
}

var _ order.Repository = (*OrderRepository)(nil)

func newOrderRepository(db *memdb.MemDB, now func() time.Time) *OrderRepository {
	return &OrderRepository{
		table: newTable(db, tableOrders, order.Fields),
		now:   now,
	}
}

// Paged retrieves a page of orders matching a filter
func (repo *OrderRepository) Paged(ctx context.Context, filter *order.Filter, request *query.Request) (*query.Page[*order.Order], error) {
	return repo.paged(ctx, filter.Conditions(), request)
}

// Create creates a new order
func (repo *OrderRepository) Create(_ context.Context, create *order.Create) (*order.Order, error) {
	obj := order.New(create, repo.now())
	obj.ID = repo.nextID()
	if err := repo.create(obj); err != nil {
		return nil, err
	}
	return obj, nil
}
