package memory

import (
	"context"
	"time"

	"github.com/cfelipe-app/Route/internal/capacity"
	"github.com/cfelipe-app/Route/internal/query"
	"github.com/hashicorp/go-memdb"
)

// CapacityRequestRepository implements the capacity.Repository interface using go-memdb
type CapacityRequestRepository struct {
	*table[capacity.Request]
	now func() time.Time
}

var _ capacity.Repository = (*CapacityRequestRepository)(nil)

func newCapacityRequestRepository(db *memdb.MemDB, now func() time.Time) *CapacityRequestRepository {
	repo := &CapacityRequestRepository{
		table: newTable(db, tableCapacityRequests, capacity.Fields),
		now:   now,
	}
	repo.cascade = cascadeCapacityRequest
	return repo
}

// Paged retrieves a page of capacity requests matching a filter
func (repo *CapacityRequestRepository) Paged(ctx context.Context, filter *capacity.Filter, request *query.Request) (*query.Page[*capacity.Request], error) {
	return repo.paged(ctx, filter.Conditions(), request)
}

// Create creates a new capacity request; storage.ErrUnknownReference is returned if the target provider does not exist
func (repo *CapacityRequestRepository) Create(_ context.Context, create *capacity.Create) (*capacity.Request, error) {
	obj := capacity.New(create, repo.now())

	txn := repo.db.Txn(true)
	defer txn.Abort()

	if obj.ProviderID != nil {
		if err := requireRecord(txn, tableProviders, *obj.ProviderID); err != nil {
			return nil, err
		}
	}

	obj.ID = repo.nextID()
	if err := repo.insert(txn, obj); err != nil {
		return nil, err
	}

	txn.Commit()
	return obj, nil
}

// UpdateStatus sets the status of a capacity request
func (repo *CapacityRequestRepository) UpdateStatus(_ context.Context, id int64, status capacity.Status) (*capacity.Request, error) {
	txn := repo.db.Txn(true)
	defer txn.Abort()

	obj, err := repo.first(txn, id)
	if err != nil || obj == nil {
		return nil, err
	}
	obj.Status = status
	if err := repo.insert(txn, obj); err != nil {
		return nil, err
	}

	txn.Commit()
	return obj, nil
}

// Summary counts the capacity requests per status whose service date lies within a window of days
func (repo *CapacityRequestRepository) Summary(_ context.Context, from, to *time.Time) (*capacity.Summary, error) {
	plan, err := query.NewPlan(repo.fields, capacity.SummaryConditions(from, to), nil)
	if err != nil {
		return nil, err
	}
	records, err := repo.snapshot()
	if err != nil {
		return nil, err
	}

	counts := make(map[capacity.Status]uint64, len(capacity.Statuses))
	for _, obj := range records {
		if plan.Match(obj) {
			counts[obj.Status]++
		}
	}

	return capacity.NewSummary(counts), nil
}
