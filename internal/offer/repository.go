package offer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cfelipe-app/Route/internal/query"
)

var (
	// ErrUnknownRequest is returned when an offer refers to a capacity request that does not exist
	ErrUnknownRequest = errors.New("unknown capacity request")

	// ErrAlreadyDecided is returned when a decision is made on an offer that was already accepted or rejected
	ErrAlreadyDecided = errors.New("offer was already decided on")
)

// Repository defines the vehicle offer repository API
type Repository interface {
	// Paged retrieves a page of offers matching a filter
	Paged(ctx context.Context, filter *Filter, request *query.Request) (*query.Page[*Offer], error)

	// GetByID retrieves an offer by its ID
	GetByID(ctx context.Context, id int64) (*Offer, error)

	// Create creates a new offer.
	// ErrUnknownRequest is returned if the referenced capacity request does not exist and storage.ErrDuplicate if
	// the vehicle was already offered for it.
	Create(ctx context.Context, create *Create) (*Offer, error)

	// Decide accepts or rejects an offer.
	// A nil offer is returned if there is no offer with the given ID.
	Decide(ctx context.Context, id int64, decision *Decision) (*Offer, error)

	// Delete deletes an offer by its ID
	Delete(ctx context.Context, id int64) error
}

// Create is used to create a new offer
type Create struct {
	CapacityRequestID int64
	ProviderID        int64
	VehicleID         int64
	OfferedWeightKg   float64
	OfferedVolumeM3   float64
	Price             float64
	Currency          string
	Notes             *string
	Status            *Status
}

// Decision is used to accept or reject an offer
type Decision struct {
	Accept    bool
	DecidedBy *string
	At        time.Time
}

// Status returns the status the decision results in
func (decision *Decision) Status() Status {
	if decision.Accept {
		return StatusAccepted
	}
	return StatusRejected
}

// Apply applies a decision to an offer
func (decision *Decision) Apply(obj *Offer) error {
	if !obj.Decidable() {
		return ErrAlreadyDecided
	}
	at := decision.At.UTC()
	obj.Status = decision.Status()
	obj.DecisionAt = &at
	obj.DecidedBy = nil
	if decision.DecidedBy != nil {
		decidedBy := strings.TrimSpace(*decision.DecidedBy)
		obj.DecidedBy = &decidedBy
	}
	return nil
}

// Filter is used to query offers based on a filter
type Filter struct {
	CapacityRequestID *int64
	ProviderID        *int64
	VehicleID         *int64
	Status            *Status
	CreatedFrom       *time.Time
	CreatedTo         *time.Time

	// ViewerID restricts the result to the offers on capacity requests visible to a provider
	ViewerID *int64
}

// Conditions translates the filter into shaping conditions
func (filter *Filter) Conditions() []query.Condition {
	if filter == nil {
		return nil
	}
	return []query.Condition{
		query.Equal{Field: "capacityRequestId", Value: filter.CapacityRequestID},
		query.Equal{Field: "providerId", Value: filter.ProviderID},
		query.Equal{Field: "vehicleId", Value: filter.VehicleID},
		query.Equal{Field: "status", Value: filter.Status},
		query.DayRange{Field: "createdAt", From: filter.CreatedFrom, To: filter.CreatedTo},
		query.Visibility{
			PrivateField: "requestPrivate",
			TargetField:  "requestTargetProviderId",
			ViewerID:     filter.ViewerID,
			Enabled:      true,
		},
	}
}
