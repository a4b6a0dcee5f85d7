package memory

import (
	"context"
	"time"

	"github.com/cfelipe-app/Route/internal/provider"
	"github.com/cfelipe-app/Route/internal/query"
	"github.com/hashicorp/go-memdb"
)

// ProviderRepository implements the provider.Repository interface using go-memdb
type ProviderRepository struct {
	*table[provider.Provider]
	now func() time.Time
}

var _ provider.Repository = (*ProviderRepository)(nil)

func newProviderRepository(db *memdb.MemDB, now func() time.Time) *ProviderRepository {
	repo := &ProviderRepository{
		table: newTable(db, tableProviders, provider.Fields),
		now:   now,
	}
	repo.cascade = cascadeProvider
	return repo
}

// Paged retrieves a page of providers matching a filter
func (repo *ProviderRepository) Paged(ctx context.Context, filter *provider.Filter, request *query.Request) (*query.Page[*provider.Provider], error) {
	return repo.paged(ctx, filter.Conditions(), request)
}

// Create creates a new provider
func (repo *ProviderRepository) Create(_ context.Context, create *provider.Create) (*provider.Provider, error) {
	obj := provider.New(create, repo.now())
	obj.ID = repo.nextID()
	if err := repo.create(obj); err != nil {
		return nil, err
	}
	return obj, nil
}
