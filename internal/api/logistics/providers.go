package logistics

import (
	"context"
	"net/http"

	"github.com/cfelipe-app/Route/internal/api/validation"
	"github.com/cfelipe-app/Route/internal/provider"
	"github.com/cfelipe-app/Route/internal/query"
)

type createProviderBody struct {
	Name        *string `json:"name" required:"true"`
	TaxID       *string `json:"taxId" required:"true"`
	ContactName *string `json:"contactName"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	IsActive    *bool   `json:"isActive"`
}

// EndpointGetProvidersPaged handles the 'GET /v1/providers/paged?isActive={bool?}&fromCreated={date?}&toCreated={date?}' endpoint
func (service *Service) EndpointGetProvidersPaged(writer http.ResponseWriter, request *http.Request) {
	var errs validation.Collector
	filter := &provider.Filter{
		IsActive:    errs.Bool(request, "isActive"),
		CreatedFrom: errs.Date(request, "fromCreated"),
		CreatedTo:   errs.Date(request, "toCreated"),
	}

	servePage(service, writer, request, errs, func(ctx context.Context, req *query.Request) (*query.Page[*provider.Provider], error) {
		return service.Storage.Providers().Paged(ctx, filter, req)
	})
}

// EndpointGetProvider handles the 'GET /v1/providers/{id}' endpoint
func (service *Service) EndpointGetProvider(writer http.ResponseWriter, request *http.Request) {
	serveRecord(service, writer, request, service.Storage.Providers().GetByID)
}

// EndpointCreateProvider handles the 'POST /v1/providers' endpoint
func (service *Service) EndpointCreateProvider(writer http.ResponseWriter, request *http.Request) {
	body, ok := decodeBody[createProviderBody](service, writer, request)
	if !ok {
		return
	}

	obj, err := service.Storage.Providers().Create(request.Context(), &provider.Create{
		Name:        *body.Name,
		TaxID:       *body.TaxID,
		ContactName: body.ContactName,
		Phone:       body.Phone,
		Email:       body.Email,
		Address:     body.Address,
		IsActive:    body.IsActive,
	})
	serveCreated(service, writer, request, obj, err)
}

// EndpointDeleteProvider handles the 'DELETE /v1/providers/{id}' endpoint
func (service *Service) EndpointDeleteProvider(writer http.ResponseWriter, request *http.Request) {
	serveDelete(service, writer, request, service.Storage.Providers().Delete)
}
