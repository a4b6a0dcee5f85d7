package offer

import (
	"fmt"
	"strings"
	"time"

	"github.com/cfelipe-app/Route/internal/query"
)

// Status represents the negotiation status of a vehicle offer
type Status string

const (
	StatusDraft    Status = "Draft"
	StatusSent     Status = "Sent"
	StatusAccepted Status = "Accepted"
	StatusRejected Status = "Rejected"
)

// Statuses holds every known offer status
var Statuses = []Status{StatusDraft, StatusSent, StatusAccepted, StatusRejected}

// ParseStatus resolves a case-insensitive status name
func ParseStatus(raw string) (Status, error) {
	for _, status := range Statuses {
		if strings.EqualFold(strings.TrimSpace(raw), string(status)) {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown offer status %q", raw)
}

// DefaultCurrency is used if an offer does not specify a currency
const DefaultCurrency = "PEN"

// Offer represents a provider offering one of its vehicles for a capacity request.
// RequestPrivate and RequestTargetProviderID mirror the visibility of the capacity request at creation time.
type Offer struct {
	ID                      int64      `json:"id"`
	CapacityRequestID       int64      `json:"capacityRequestId"`
	ProviderID              int64      `json:"providerId"`
	VehicleID               int64      `json:"vehicleId"`
	OfferedWeightKg         float64    `json:"offeredWeightKg"`
	OfferedVolumeM3         float64    `json:"offeredVolumeM3"`
	Price                   float64    `json:"price"`
	Currency                string     `json:"currency"`
	Notes                   *string    `json:"notes"`
	Status                  Status     `json:"status"`
	CreatedAt               time.Time  `json:"createdAt"`
	DecisionAt              *time.Time `json:"decisionAt"`
	DecidedBy               *string    `json:"decidedBy"`
	RequestPrivate          bool       `json:"-"`
	RequestTargetProviderID *int64     `json:"-"`
}

// Fields is the field descriptor table of vehicle offers
var Fields = query.NewFields[*Offer]("id", "createdAt",
	&query.Field[*Offer]{Name: "id", Column: "id", Value: func(obj *Offer) any { return obj.ID }, Sortable: true},
	&query.Field[*Offer]{Name: "capacityRequestId", Column: "capacity_request_id", Value: func(obj *Offer) any { return obj.CapacityRequestID }, Sortable: true},
	&query.Field[*Offer]{Name: "providerId", Column: "provider_id", Value: func(obj *Offer) any { return obj.ProviderID }, Sortable: true},
	&query.Field[*Offer]{Name: "vehicleId", Column: "vehicle_id", Value: func(obj *Offer) any { return obj.VehicleID }, Sortable: true},
	&query.Field[*Offer]{Name: "offeredWeightKg", Column: "offered_weight_kg", Value: func(obj *Offer) any { return obj.OfferedWeightKg }, Sortable: true},
	&query.Field[*Offer]{Name: "offeredVolumeM3", Column: "offered_volume_m3", Value: func(obj *Offer) any { return obj.OfferedVolumeM3 }, Sortable: true},
	&query.Field[*Offer]{Name: "price", Column: "price", Value: func(obj *Offer) any { return obj.Price }, Sortable: true},
	&query.Field[*Offer]{Name: "currency", Column: "currency", Value: func(obj *Offer) any { return obj.Currency }, Searchable: true, Sortable: true},
	&query.Field[*Offer]{Name: "notes", Column: "notes", Value: func(obj *Offer) any { return obj.Notes }, Searchable: true},
	&query.Field[*Offer]{Name: "status", Column: "status", Value: func(obj *Offer) any { return obj.Status }, Sortable: true},
	&query.Field[*Offer]{Name: "createdAt", Column: "created_at", Value: func(obj *Offer) any { return obj.CreatedAt }, Sortable: true},
	&query.Field[*Offer]{Name: "decisionAt", Column: "decision_at", Value: func(obj *Offer) any { return obj.DecisionAt }, Sortable: true},
	&query.Field[*Offer]{Name: "requestPrivate", Column: "request_private", Value: func(obj *Offer) any { return obj.RequestPrivate }},
	&query.Field[*Offer]{Name: "requestTargetProviderId", Column: "request_target_provider_id", Value: func(obj *Offer) any { return obj.RequestTargetProviderID }},
)

// New builds a new offer out of a creation request.
// The visibility of the offer is inherited from the capacity request it belongs to.
func New(create *Create, private bool, targetProviderID *int64, now time.Time) *Offer {
	status := StatusDraft
	if create.Status != nil {
		status = *create.Status
	}
	currency := strings.TrimSpace(create.Currency)
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Offer{
		CapacityRequestID:       create.CapacityRequestID,
		ProviderID:              create.ProviderID,
		VehicleID:               create.VehicleID,
		OfferedWeightKg:         create.OfferedWeightKg,
		OfferedVolumeM3:         create.OfferedVolumeM3,
		Price:                   create.Price,
		Currency:                currency,
		Notes:                   create.Notes,
		Status:                  status,
		CreatedAt:               now.UTC(),
		RequestPrivate:          private,
		RequestTargetProviderID: targetProviderID,
	}
}

// Decidable reports whether a decision may still be made on the offer
func (obj *Offer) Decidable() bool {
	return obj.Status == StatusDraft || obj.Status == StatusSent
}
