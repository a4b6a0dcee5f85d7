package driver

import (
	"strings"
	"time"

	"github.com/cfelipe-app/Route/internal/query"
)

// Driver represents a driver employed by a provider
type Driver struct {
	ID            int64     `json:"id"`
	FullName      string    `json:"fullName"`
	DocumentID    *string   `json:"documentId"`
	Phone         *string   `json:"phone"`
	Email         *string   `json:"email"`
	LicenseNumber *string   `json:"licenseNumber"`
	LicenseClass  *string   `json:"licenseClass"`
	IsActive      bool      `json:"isActive"`
	ProviderID    int64     `json:"providerId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Fields is the field descriptor table of drivers
var Fields = query.NewFields[*Driver]("id", "fullName",
	&query.Field[*Driver]{Name: "id", Column: "id", Value: func(obj *Driver) any { return obj.ID }, Sortable: true},
	&query.Field[*Driver]{Name: "fullName", Column: "full_name", Value: func(obj *Driver) any { return obj.FullName }, Searchable: true, Sortable: true},
	&query.Field[*Driver]{Name: "documentId", Column: "document_id", Value: func(obj *Driver) any { return obj.DocumentID }, Searchable: true, Sortable: true},
	&query.Field[*Driver]{Name: "phone", Column: "phone", Value: func(obj *Driver) any { return obj.Phone }, Searchable: true},
	&query.Field[*Driver]{Name: "email", Column: "email", Value: func(obj *Driver) any { return obj.Email }, Searchable: true},
	&query.Field[*Driver]{Name: "licenseNumber", Column: "license_number", Value: func(obj *Driver) any { return obj.LicenseNumber }, Searchable: true, Sortable: true},
	&query.Field[*Driver]{Name: "licenseClass", Column: "license_class", Value: func(obj *Driver) any { return obj.LicenseClass }, Sortable: true},
	&query.Field[*Driver]{Name: "isActive", Column: "is_active", Value: func(obj *Driver) any { return obj.IsActive }, Sortable: true},
	&query.Field[*Driver]{Name: "providerId", Column: "provider_id", Value: func(obj *Driver) any { return obj.ProviderID }, Sortable: true},
	&query.Field[*Driver]{Name: "createdAt", Column: "created_at", Value: func(obj *Driver) any { return obj.CreatedAt }, Sortable: true},
)

// New builds a new driver out of a creation request
func New(create *Create, now time.Time) *Driver {
	isActive := true
	if create.IsActive != nil {
		isActive = *create.IsActive
	}
	return &Driver{
		FullName:      strings.TrimSpace(create.FullName),
		DocumentID:    create.DocumentID,
		Phone:         create.Phone,
		Email:         create.Email,
		LicenseNumber: create.LicenseNumber,
		LicenseClass:  create.LicenseClass,
		IsActive:      isActive,
		ProviderID:    create.ProviderID,
		CreatedAt:     now.UTC(),
	}
}
