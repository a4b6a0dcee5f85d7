package postgres

import (
	"context"
	"time"

	"github.com/cfelipe-app/Route/internal/capacity"
	"github.com/cfelipe-app/Route/internal/offer"
	"github.com/cfelipe-app/Route/internal/query"
)

// OfferRepository implements the offer.Repository interface using PostgreSQL
type OfferRepository struct {
	*table[*offer.Offer]
	requests *table[*capacity.Request]
}

var _ offer.Repository = (*OfferRepository)(nil)

// Paged retrieves a page of offers matching a filter
func (repo *OfferRepository) Paged(ctx context.Context, filter *offer.Filter, request *query.Request) (*query.Page[*offer.Offer], error) {
	return repo.paged(ctx, filter.Conditions(), request)
}

// Create creates a new offer inheriting the visibility of its capacity request
func (repo *OfferRepository) Create(ctx context.Context, create *offer.Create) (*offer.Offer, error) {
	tx, err := repo.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	req, err := repo.requests.first(ctx, tx, repo.requests.def.ByID(create.CapacityRequestID).Suffix("FOR SHARE"))
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, offer.ErrUnknownRequest
	}

	obj := offer.New(create, req.OnlyTargetProvider, req.ProviderID, time.Now())
	id, err := repo.insert(ctx, tx, obj)
	if err != nil {
		return nil, err
	}
	obj.ID = id

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return obj, nil
}

// Decide accepts or rejects an offer
func (repo *OfferRepository) Decide(ctx context.Context, id int64, decision *offer.Decision) (*offer.Offer, error) {
	tx, err := repo.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	obj, err := repo.first(ctx, tx, repo.def.ByID(id).Suffix("FOR UPDATE"))
	if err != nil || obj == nil {
		return nil, err
	}
	if err := decision.Apply(obj); err != nil {
		return nil, err
	}

	_, err = repo.update(ctx, tx, id, map[string]any{
		"status":      string(obj.Status),
		"decision_at": obj.DecisionAt,
		"decided_by":  obj.DecidedBy,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return obj, nil
}
