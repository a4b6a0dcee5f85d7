package mysql

import (
	"context"
	"time"

	"github.com/cfelipe-app/Route/internal/order"
	"github.com/cfelipe-app/Route/internal/query"
)

// OrderRepository implements the order.Repository interface using MySQL
type OrderRepository struct {
	*table[*order.Order]
}

var _ order.Repository = (*OrderRepository)(nil)

// Paged retrieves a page of orders matching a filter
func (repo *OrderRepository) Paged(ctx context.Context, filter *order.Filter, request *query.Request) (*query.Page[*order.Order], error) {
	return repo.paged(ctx, filter.Conditions(), request)
}

// Create creates a new order
func (repo *OrderRepository) Create(ctx context.Context, create *order.Create) (*order.Order, error) {
	obj := order.New(create, time.Now())
	id, err := repo.insert(ctx, repo.db, obj)
	if err != nil {
		return nil, err
	}
	obj.ID = id
	return obj, nil
}
