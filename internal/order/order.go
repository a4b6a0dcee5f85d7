package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/cfelipe-app/Route/internal/query"
)

// Status represents the delivery status of an order
type Status string

const (
	StatusPending   Status = "Pending"
	StatusEnRoute   Status = "EnRoute"
	StatusDelivered Status = "Delivered"
	StatusFailed    Status = "Failed"
)

// Statuses holds every known order status
var Statuses = []Status{StatusPending, StatusEnRoute, StatusDelivered, StatusFailed}

// ParseStatus resolves a case-insensitive status name
func ParseStatus(raw string) (Status, error) {
	for _, status := range Statuses {
		if strings.EqualFold(strings.TrimSpace(raw), string(status)) {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", raw)
}

// Order represents a customer order to be delivered
type Order struct {
	ID              int64      `json:"id"`
	ExternalOrderNo string     `json:"externalOrderNo"`
	CustomerName    string     `json:"customerName"`
	CustomerTaxID   *string    `json:"customerTaxId"`
	Address         string     `json:"address"`
	District        *string    `json:"district"`
	Lat             *float64   `json:"lat"`
	Lng             *float64   `json:"lng"`
	WeightKg        float64    `json:"weightKg"`
	VolumeM3        float64    `json:"volumeM3"`
	Amount          float64    `json:"amount"`
	Status          Status     `json:"status"`
	ScheduledAt     *time.Time `json:"scheduledAt"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// Fields is the field descriptor table of orders
var Fields = query.NewFields[*Order]("id", "createdAt",
	&query.Field[*Order]{Name: "id", Column: "id", Value: func(obj *Order) any { return obj.ID }, Sortable: true},
	&query.Field[*Order]{Name: "externalOrderNo", Column: "external_order_no", Value: func(obj *Order) any { return obj.ExternalOrderNo }, Searchable: true, Sortable: true},
	&query.Field[*Order]{Name: "customerName", Column: "customer_name", Value: func(obj *Order) any { return obj.CustomerName }, Searchable: true, Sortable: true},
	&query.Field[*Order]{Name: "customerTaxId", Column: "customer_tax_id", Value: func(obj *Order) any { return obj.CustomerTaxID }, Searchable: true},
	&query.Field[*Order]{Name: "address", Column: "address", Value: func(obj *Order) any { return obj.Address }, Searchable: true},
	&query.Field[*Order]{Name: "district", Column: "district", Value: func(obj *Order) any { return obj.District }, Searchable: true, Sortable: true},
	&query.Field[*Order]{Name: "weightKg", Column: "weight_kg", Value: func(obj *Order) any { return obj.WeightKg }, Sortable: true},
	&query.Field[*Order]{Name: "volumeM3", Column: "volume_m3", Value: func(obj *Order) any { return obj.VolumeM3 }, Sortable: true},
	&query.Field[*Order]{Name: "amount", Column: "amount", Value: func(obj *Order) any { return obj.Amount }, Sortable: true},
	&query.Field[*Order]{Name: "status", Column: "status", Value: func(obj *Order) any { return obj.Status }, Sortable: true},
	&query.Field[*Order]{Name: "scheduledAt", Column: "scheduled_at", Value: func(obj *Order) any { return obj.ScheduledAt }, Sortable: true},
	&query.Field[*Order]{Name: "createdAt", Column: "created_at", Value: func(obj *Order) any { return obj.CreatedAt }, Sortable: true},
)

// New builds a new pending order out of a creation request
func New(create *Create, now time.Time) *Order {
	status := StatusPending
	if create.Status != nil {
		status = *create.Status
	}
	return &Order{
		ExternalOrderNo: strings.TrimSpace(create.ExternalOrderNo),
		CustomerName:    strings.TrimSpace(create.CustomerName),
		CustomerTaxID:   create.CustomerTaxID,
		Address:         strings.TrimSpace(create.Address),
		District:        create.District,
		Lat:             create.Lat,
		Lng:             create.Lng,
		WeightKg:        create.WeightKg,
		VolumeM3:        create.VolumeM3,
		Amount:          create.Amount,
		Status:          status,
		ScheduledAt:     create.ScheduledAt,
		CreatedAt:       now.UTC(),
	}
}
