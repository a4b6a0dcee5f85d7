package memory

import (
	"context"
	"time"

	"github.com/cfelipe-app/Route/internal/capacity"
	"github.com/cfelipe-app/Route/internal/offer"
	"github.com/cfelipe-app/Route/internal/query"
	"github.com/cfelipe-app/Route/internal/storage"
	"github.com/hashicorp/go-memdb"
)

// OfferRepository implements the offer.Repository interface using go-memdb
type OfferRepository struct {
	*table[offer.Offer]
	requests *table[capacity.Request]
	now      func() time.Time
}

var _ offer.Repository = (*OfferRepository)(nil)

func newOfferRepository(db *memdb.MemDB, requests *table[capacity.Request], now func() time.Time) *OfferRepository {
	return &OfferRepository{
		table:    newTable(db, tableOffers, offer.Fields),
		requests: requests,
		now:      now,
	}
}

// Paged retrieves a page of offers matching a filter
func (repo *OfferRepository) Paged(ctx context.Context, filter *offer.Filter, request *query.Request) (*query.Page[*offer.Offer], error) {
	return repo.paged(ctx, filter.Conditions(), request)
}

// Create creates a new offer inheriting the visibility of its capacity request.
// The provider and the vehicle must exist as well; storage.ErrUnknownReference is returned otherwise.
func (repo *OfferRepository) Create(_ context.Context, create *offer.Create) (*offer.Offer, error) {
	txn := repo.db.Txn(true)
	defer txn.Abort()

	req, err := repo.requests.first(txn, create.CapacityRequestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, offer.ErrUnknownRequest
	}

	existing, err := txn.First(tableOffers, "request_vehicle", create.CapacityRequestID, create.VehicleID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, storage.ErrDuplicate
	}
	if err := requireRecord(txn, tableProviders, create.ProviderID); err != nil {
		return nil, err
	}
	if err := requireRecord(txn, tableVehicles, create.VehicleID); err != nil {
		return nil, err
	}

	obj := offer.New(create, req.OnlyTargetProvider, req.ProviderID, repo.now())
	obj.ID = repo.nextID()
	if err := repo.insert(txn, obj); err != nil {
		return nil, err
	}

	txn.Commit()
	return obj, nil
}

// Decide accepts or rejects an offer
func (repo *OfferRepository) Decide(_ context.Context, id int64, decision *offer.Decision) (*offer.Offer, error) {
	txn := repo.db.Txn(true)
	defer txn.Abort()

	obj, err := repo.first(txn, id)
	if err != nil || obj == nil {
		return nil, err
	}
	if err := decision.Apply(obj); err != nil {
		return nil, err
	}
	if err := repo.insert(txn, obj); err != nil {
		return nil, err
	}

	txn.Commit()
	return obj, nil
}
