package vehicle

import (
	"strings"

	"github.com/cfelipe-app/Route/internal/query"
)

// Vehicle represents a vehicle owned by a provider
type Vehicle struct {
	ID                   int64   `json:"id"`
	ProviderID           int64   `json:"providerId"`
	Plate                string  `json:"plate"`
	Model                *string `json:"model"`
	Brand                *string `json:"brand"`
	CapacityKg           float64 `json:"capacityKg"`
	CapacityVolM3        float64 `json:"capacityVolM3"`
	Seats                int     `json:"seats"`
	Type                 *string `json:"type"`
	IsActive             bool    `json:"isActive"`
	CapacityTonnageLabel *string `json:"capacityTonnageLabel"`
}

// Fields is the field descriptor table of vehicles
var Fields = query.NewFields[*Vehicle]("id", "plate",
	&query.Field[*Vehicle]{Name: "id", Column: "id", Value: func(obj *Vehicle) any { return obj.ID }, Sortable: true},
	&query.Field[*Vehicle]{Name: "providerId", Column: "provider_id", Value: func(obj *Vehicle) any { return obj.ProviderID }, Sortable: true},
	&query.Field[*Vehicle]{Name: "plate", Column: "plate", Value: func(obj *Vehicle) any { return obj.Plate }, Searchable: true, Sortable: true},
	&query.Field[*Vehicle]{Name: "model", Column: "model", Value: func(obj *Vehicle) any { return obj.Model }, Searchable: true, Sortable: true},
	&query.Field[*Vehicle]{Name: "brand", Column: "brand", Value: func(obj *Vehicle) any { return obj.Brand }, Searchable: true, Sortable: true},
	&query.Field[*Vehicle]{Name: "capacityKg", Column: "capacity_kg", Value: func(obj *Vehicle) any { return obj.CapacityKg }, Sortable: true},
	&query.Field[*Vehicle]{Name: "capacityVolM3", Column: "capacity_vol_m3", Value: func(obj *Vehicle) any { return obj.CapacityVolM3 }, Sortable: true},
	&query.Field[*Vehicle]{Name: "seats", Column: "seats", Value: func(obj *Vehicle) any { return obj.Seats }, Sortable: true},
	&query.Field[*Vehicle]{Name: "type", Column: "type", Value: func(obj *Vehicle) any { return obj.Type }, Sortable: true},
	&query.Field[*Vehicle]{Name: "isActive", Column: "is_active", Value: func(obj *Vehicle) any { return obj.IsActive }, Sortable: true},
)

// DefaultSeats is the amount of seats assumed if none are specified
const DefaultSeats = 2

// New builds a new vehicle out of a creation request.
// Plates are stored upper-cased without surrounding whitespace.
func New(create *Create) *Vehicle {
	isActive := true
	if create.IsActive != nil {
		isActive = *create.IsActive
	}
	seats := DefaultSeats
	if create.Seats != nil {
		seats = *create.Seats
	}
	return &Vehicle{
		ProviderID:           create.ProviderID,
		Plate:                strings.ToUpper(strings.TrimSpace(create.Plate)),
		Model:                create.Model,
		Brand:                create.Brand,
		CapacityKg:           create.CapacityKg,
		CapacityVolM3:        create.CapacityVolM3,
		Seats:                seats,
		Type:                 create.Type,
		IsActive:             isActive,
		CapacityTonnageLabel: create.CapacityTonnageLabel,
	}
}
