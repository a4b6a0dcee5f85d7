package logistics

import (
	"context"
	"net/http"

	"github.com/cfelipe-app/Route/internal/api/validation"
	"github.com/cfelipe-app/Route/internal/query"
	"github.com/cfelipe-app/Route/internal/vehicle"
)

type createVehicleBody struct {
	ProviderID           *int64   `json:"providerId" required:"true" min:"1"`
	Plate                *string  `json:"plate" required:"true"`
	Model                *string  `json:"model"`
	Brand                *string  `json:"brand"`
	CapacityKg           *float64 `json:"capacityKg" min:"0"`
	CapacityVolM3        *float64 `json:"capacityVolM3" min:"0"`
	Seats                *int     `json:"seats" min:"1" max:"99"`
	Type                 *string  `json:"type"`
	IsActive             *bool    `json:"isActive"`
	CapacityTonnageLabel *string  `json:"capacityTonnageLabel"`
}

// EndpointGetVehiclesPaged handles the 'GET /v1/vehicles/paged?providerId={number?}&isActive={bool?}' endpoint
func (service *Service) EndpointGetVehiclesPaged(writer http.ResponseWriter, request *http.Request) {
	var errs validation.Collector
	filter := &vehicle.Filter{
		ProviderID: errs.ID(request, "providerId"),
		IsActive:   errs.Bool(request, "isActive"),
	}

	servePage(service, writer, request, errs, func(ctx context.Context, req *query.Request) (*query.Page[*vehicle.Vehicle], error) {
		return service.Storage.Vehicles().Paged(ctx, filter, req)
	})
}

// EndpointGetVehicle handles the 'GET /v1/vehicles/{id}' endpoint
func (service *Service) EndpointGetVehicle(writer http.ResponseWriter, request *http.Request) {
	serveRecord(service, writer, request, service.Storage.Vehicles().GetByID)
}

// EndpointCreateVehicle handles the 'POST /v1/vehicles' endpoint
func (service *Service) EndpointCreateVehicle(writer http.ResponseWriter, request *http.Request) {
	body, ok := decodeBody[createVehicleBody](service, writer, request)
	if !ok {
		return
	}

	obj, err := service.Storage.Vehicles().Create(request.Context(), &vehicle.Create{
		ProviderID:           *body.ProviderID,
		Plate:                *body.Plate,
		Model:                body.Model,
		Brand:                body.Brand,
		CapacityKg:           valueOr(body.CapacityKg, 0),
		CapacityVolM3:        valueOr(body.CapacityVolM3, 0),
		Seats:                body.Seats,
		Type:                 body.Type,
		IsActive:             body.IsActive,
		CapacityTonnageLabel: body.CapacityTonnageLabel,
	})
	serveCreated(service, writer, request, obj, err)
}

// EndpointDeleteVehicle handles the 'DELETE /v1/vehicles/{id}' endpoint
func (service *Service) EndpointDeleteVehicle(writer http.ResponseWriter, request *http.Request) {
	serveDelete(service, writer, request, service.Storage.Vehicles().Delete)
}

func valueOr[T any](value *T, def T) T {
	if value == nil {
		return def
	}
	return *value
}
