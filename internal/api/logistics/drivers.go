package logistics

import (
	"context"
	"net/http"

	"github.com/cfelipe-app/Route/internal/api/validation"
	"github.com/cfelipe-app/Route/internal/driver"
	"github.com/cfelipe-app/Route/internal/query"
)

type createDriverBody struct {
	FullName      *string `json:"fullName" required:"true"`
	DocumentID    *string `json:"documentId"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	LicenseNumber *string `json:"licenseNumber"`
	LicenseClass  *string `json:"licenseClass"`
	IsActive      *bool   `json:"isActive"`
	ProviderID    *int64  `json:"providerId" required:"true" min:"1"`
}

// EndpointGetDriversPaged handles the 'GET /v1/drivers/paged?providerId={number?}&isActive={bool?}' endpoint
func (service *Service) EndpointGetDriversPaged(writer http.ResponseWriter, request *http.Request) {
	var errs validation.Collector
	filter := &driver.Filter{
		ProviderID: errs.ID(request, "providerId"),
		IsActive:   errs.Bool(request, "isActive"),
	}

	servePage(service, writer, request, errs, func(ctx context.Context, req *query.Request) (*query.Page[*driver.Driver], error) {
		return service.Storage.Drivers().Paged(ctx, filter, req)
	})
}

// EndpointGetDriver handles the 'GET /v1/drivers/{id}' endpoint
func (service *Service) EndpointGetDriver(writer http.ResponseWriter, request *http.Request) {
	serveRecord(service, writer, request, service.Storage.Drivers().GetByID)
}

// EndpointCreateDriver handles the 'POST /v1/drivers' endpoint
func (service *Service) EndpointCreateDriver(writer http.ResponseWriter, request *http.Request) {
	body, ok := decodeBody[createDriverBody](service, writer, request)
	if !ok {
		return
	}

	obj, err := service.Storage.Drivers().Create(request.Context(), &driver.Create{
		FullName:      *body.FullName,
		DocumentID:    body.DocumentID,
		Phone:         body.Phone,
		Email:         body.Email,
		LicenseNumber: body.LicenseNumber,
		LicenseClass:  body.LicenseClass,
		IsActive:      body.IsActive,
		ProviderID:    *body.ProviderID,
	})
	serveCreated(service, writer, request, obj, err)
}

// EndpointDeleteDriver handles the 'DELETE /v1/drivers/{id}' endpoint
func (service *Service) EndpointDeleteDriver(writer http.ResponseWriter, request *http.Request) {
	serveDelete(service, writer, request, service.Storage.Drivers().Delete)
}
