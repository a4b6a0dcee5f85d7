package provider

import (
	"strings"
	"time"

	"github.com/cfelipe-app/Route/internal/query"
)

// Provider represents a transport provider owning vehicles and drivers
type Provider struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	TaxID       string    `json:"taxId"`
	ContactName *string   `json:"contactName"`
	Phone       *string   `json:"phone"`
	Email       *string   `json:"email"`
	Address     *string   `json:"address"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Fields is the field descriptor table of providers
var Fields = query.NewFields[*Provider]("id", "name",
	&query.Field[*Provider]{Name: "id", Column: "id", Value: func(obj *Provider) any { return obj.ID }, Sortable: true},
	&query.Field[*Provider]{Name: "name", Column: "name", Value: func(obj *Provider) any { return obj.Name }, Searchable: true, Sortable: true},
	&query.Field[*Provider]{Name: "taxId", Column: "tax_id", Value: func(obj *Provider) any { return obj.TaxID }, Searchable: true, Sortable: true},
	&query.Field[*Provider]{Name: "contactName", Column: "contact_name", Value: func(obj *Provider) any { return obj.ContactName }, Searchable: true, Sortable: true},
	&query.Field[*Provider]{Name: "phone", Column: "phone", Value: func(obj *Provider) any { return obj.Phone }, Searchable: true},
	&query.Field[*Provider]{Name: "email", Column: "email", Value: func(obj *Provider) any { return obj.Email }, Searchable: true, Sortable: true},
	&query.Field[*Provider]{Name: "isActive", Column: "is_active", Value: func(obj *Provider) any { return obj.IsActive }, Sortable: true},
	&query.Field[*Provider]{Name: "createdAt", Column: "created_at", Value: func(obj *Provider) any { return obj.CreatedAt }, Sortable: true},
)

// New builds a new provider out of a creation request
func New(create *Create, now time.Time) *Provider {
	isActive := true
	if create.IsActive != nil {
		isActive = *create.IsActive
	}
	return &Provider{
		Name:        strings.TrimSpace(create.Name),
		TaxID:       strings.TrimSpace(create.TaxID),
		ContactName: create.ContactName,
		Phone:       create.Phone,
		Email:       create.Email,
		Address:     create.Address,
		IsActive:    isActive,
		CreatedAt:   now.UTC(),
	}
}
