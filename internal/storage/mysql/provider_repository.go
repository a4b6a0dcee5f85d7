package mysql

import (
	"context"
	"time"

	"github.com/cfelipe-app/Route/internal/provider"
	"github.com/cfelipe-app/Route/internal/query"
)

// ProviderRepository implements the provider.Repository interface using MySQL
type ProviderRepository struct {
	*table[*provider.Provider]
}

var _ provider.Repository = (*ProviderRepository)(nil)

// Paged retrieves a page of providers matching a filter
func (repo *ProviderRepository) Paged(ctx context.Context, filter *provider.Filter, request *query.Request) (*query.Page[*provider.Provider], error) {
	return repo.paged(ctx, filter.Conditions(), request)
}

// Create creates a new provider
func (repo *ProviderRepository) Create(ctx context.Context, create *provider.Create) (*provider.Provider, error) {
	obj := provider.New(create, time.Now())
	id, err := repo.insert(ctx, repo.db, obj)
	if err != nil {
		return nil, err
	}
	obj.ID = id
	return obj, nil
}
