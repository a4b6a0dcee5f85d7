package mysql

import (
	"context"
	"time"

	"github.com/cfelipe-app/Route/internal/capacity"
	"github.com/cfelipe-app/Route/internal/query"
)

// CapacityRequestRepository implements the capacity.Repository interface using MySQL
type CapacityRequestRepository struct {
	*table[*capacity.Request]
}

var _ capacity.Repository = (*CapacityRequestRepository)(nil)

// Paged retrieves a page of capacity requests matching a filter
func (repo *CapacityRequestRepository) Paged(ctx context.Context, filter *capacity.Filter, request *query.Request) (*query.Page[*capacity.Request], error) {
	return repo.paged(ctx, filter.Conditions(), request)
}

// Create creates a new capacity request
func (repo *CapacityRequestRepository) Create(ctx context.Context, create *capacity.Create) (*capacity.Request, error) {
	obj := capacity.New(create, time.Now())
	id, err := repo.insert(ctx, repo.db, obj)
	if err != nil {
		return nil, err
	}
	obj.ID = id
	return obj, nil
}

// UpdateStatus sets the status of a capacity request
func (repo *CapacityRequestRepository) UpdateStatus(ctx context.Context, id int64, status capacity.Status) (*capacity.Request, error) {
	found, err := repo.update(ctx, repo.db, id, map[string]any{"status": string(status)})
	if err != nil || !found {
		return nil, err
	}
	return repo.GetByID(ctx, id)
}

// Summary counts the capacity requests per status whose service date lies within a window of days
func (repo *CapacityRequestRepository) Summary(ctx context.Context, from, to *time.Time) (*capacity.Summary, error) {
	plan, err := query.NewPlan(repo.def.Fields, capacity.SummaryConditions(from, to), nil)
	if err != nil {
		return nil, err
	}
	stmt, vals, err := repo.def.GroupCount("status", plan).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := repo.db.QueryContext(ctx, stmt, vals...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[capacity.Status]uint64, len(capacity.Statuses))
	for rows.Next() {
		var status string
		var n uint64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[capacity.Status(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return capacity.NewSummary(counts), nil
}
