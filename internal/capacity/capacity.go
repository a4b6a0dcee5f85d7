package capacity

import (
	"fmt"
	"strings"
	"time"

	"github.com/cfelipe-app/Route/internal/query"
)

// Status represents the lifecycle status of a capacity request
type Status string

const (
	StatusOpen             Status = "Open"
	StatusQuoted           Status = "Quoted"
	StatusAwarded          Status = "Awarded"
	StatusClosed           Status = "Closed"
	StatusPartiallyAwarded Status = "PartiallyAwarded"
	StatusExpired          Status = "Expired"
	StatusCancelled        Status = "Cancelled"
)

// Statuses holds every known capacity request status
var Statuses = []Status{
	StatusOpen,
	StatusQuoted,
	StatusAwarded,
	StatusClosed,
	StatusPartiallyAwarded,
	StatusExpired,
	StatusCancelled,
}

// ParseStatus resolves a case-insensitive status name
func ParseStatus(raw string) (Status, error) {
	for _, status := range Statuses {
		if strings.EqualFold(strings.TrimSpace(raw), string(status)) {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown capacity request status %q", raw)
}

// Request represents a request for transport capacity on a given service date.
// Requests with OnlyTargetProvider set are only visible to the provider referenced by ProviderID.
type Request struct {
	ID                 int64     `json:"id"`
	ServiceDate        time.Time `json:"serviceDate"`
	Zone               *string   `json:"zone"`
	WindowStart        *string   `json:"windowStart"`
	WindowEnd          *string   `json:"windowEnd"`
	RequiredVehicles   int       `json:"requiredVehicles"`
	TotalWeightKg      float64   `json:"totalWeightKg"`
	TotalVolumeM3      float64   `json:"totalVolumeM3"`
	Status             Status    `json:"status"`
	CreatedBy          *string   `json:"createdBy"`
	CreatedAt          time.Time `json:"createdAt"`
	OnlyTargetProvider bool      `json:"onlyTargetProvider"`
	ProviderID         *int64    `json:"providerId"`
}

// Fields is the field descriptor table of capacity requests
var Fields = query.NewFields[*Request]("id", "serviceDate",
	&query.Field[*Request]{Name: "id", Column: "id", Value: func(obj *Request) any { return obj.ID }, Sortable: true},
	&query.Field[*Request]{Name: "serviceDate", Column: "service_date", Value: func(obj *Request) any { return obj.ServiceDate }, Sortable: true},
	&query.Field[*Request]{Name: "zone", Column: "zone", Value: func(obj *Request) any { return obj.Zone }, Searchable: true, Sortable: true},
	&query.Field[*Request]{Name: "requiredVehicles", Column: "required_vehicles", Value: func(obj *Request) any { return obj.RequiredVehicles }, Sortable: true},
	&query.Field[*Request]{Name: "totalWeightKg", Column: "total_weight_kg", Value: func(obj *Request) any { return obj.TotalWeightKg }, Sortable: true},
	&query.Field[*Request]{Name: "totalVolumeM3", Column: "total_volume_m3", Value: func(obj *Request) any { return obj.TotalVolumeM3 }, Sortable: true},
	&query.Field[*Request]{Name: "status", Column: "status", Value: func(obj *Request) any { return obj.Status }, Sortable: true},
	&query.Field[*Request]{Name: "createdBy", Column: "created_by", Value: func(obj *Request) any { return obj.CreatedBy }, Searchable: true},
	&query.Field[*Request]{Name: "createdAt", Column: "created_at", Value: func(obj *Request) any { return obj.CreatedAt }, Sortable: true},
	&query.Field[*Request]{Name: "onlyTargetProvider", Column: "only_target_provider", Value: func(obj *Request) any { return obj.OnlyTargetProvider }},
	&query.Field[*Request]{Name: "providerId", Column: "provider_id", Value: func(obj *Request) any { return obj.ProviderID }, Sortable: true},
)

// New builds a new open capacity request out of a creation request
func New(create *Create, now time.Time) *Request {
	status := StatusOpen
	if create.Status != nil {
		status = *create.Status
	}
	return &Request{
		ServiceDate:        create.ServiceDate.UTC(),
		Zone:               create.Zone,
		WindowStart:        create.WindowStart,
		WindowEnd:          create.WindowEnd,
		RequiredVehicles:   create.RequiredVehicles,
		TotalWeightKg:      create.TotalWeightKg,
		TotalVolumeM3:      create.TotalVolumeM3,
		Status:             status,
		CreatedBy:          create.CreatedBy,
		CreatedAt:          now.UTC(),
		OnlyTargetProvider: create.OnlyTargetProvider,
		ProviderID:         create.ProviderID,
	}
}

// Summary represents the amount of capacity requests per status
type Summary struct {
	Total    uint64            `json:"total"`
	ByStatus map[Status]uint64 `json:"byStatus"`
}

// NewSummary builds a summary out of raw per-status counts; every known status is present in the result
func NewSummary(counts map[Status]uint64) *Summary {
	summary := &Summary{
		ByStatus: make(map[Status]uint64, len(Statuses)),
	}
	for _, status := range Statuses {
		summary.ByStatus[status] = 0
	}
	for status, n := range counts {
		summary.ByStatus[status] = n
		summary.Total += n
	}
	return summary
}
