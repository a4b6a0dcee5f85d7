package logistics

import (
	"context"
	"net/http"
	"time"

	"github.com/cfelipe-app/Route/internal/api/schema"
	"github.com/cfelipe-app/Route/internal/api/validation"
	"github.com/cfelipe-app/Route/internal/capacity"
	"github.com/cfelipe-app/Route/internal/query"
)

type createCapacityRequestBody struct {
	ServiceDate        *time.Time `json:"serviceDate" required:"true"`
	Zone               *string    `json:"zone"`
	WindowStart        *string    `json:"windowStart"`
	WindowEnd          *string    `json:"windowEnd"`
	RequiredVehicles   *int       `json:"requiredVehicles" required:"true" min:"1"`
	TotalWeightKg      *float64   `json:"totalWeightKg" min:"0"`
	TotalVolumeM3      *float64   `json:"totalVolumeM3" min:"0"`
	Status             *string    `json:"status"`
	CreatedBy          *string    `json:"createdBy"`
	OnlyTargetProvider *bool      `json:"onlyTargetProvider"`
	ProviderID         *int64     `json:"providerId" min:"1"`
}

type updateCapacityRequestStatusBody struct {
	Status *string `json:"status" required:"true"`
}

// viewer resolves the provider the result of a listing request is restricted to.
// Visibility rules only apply if 'visibleForProvider' is true and the already parsed 'providerId' is given.
func viewer(errs *validation.Collector, request *http.Request, providerID *int64) *int64 {
	visible := errs.Bool(request, "visibleForProvider")
	if visible == nil || !*visible {
		return nil
	}
	return providerID
}

// EndpointGetCapacityRequestsPaged handles the 'GET /v1/capacity_requests/paged?status={string?}&fromServiceDate={date?}&toServiceDate={date?}&providerId={number?}&visibleForProvider={bool?}' endpoint
func (service *Service) EndpointGetCapacityRequestsPaged(writer http.ResponseWriter, request *http.Request) {
	var errs validation.Collector
	status, err := validation.QueryEnum(request, "status", capacity.ParseStatus)
	errs.Add(err)
	filter := &capacity.Filter{
		Status:          status,
		ServiceDateFrom: errs.Date(request, "fromServiceDate"),
		ServiceDateTo:   errs.Date(request, "toServiceDate"),
		ViewerID:        viewer(&errs, request, errs.ID(request, "providerId")),
	}

	servePage(service, writer, request, errs, func(ctx context.Context, req *query.Request) (*query.Page[*capacity.Request], error) {
		return service.Storage.CapacityRequests().Paged(ctx, filter, req)
	})
}

// EndpointGetCapacitySummary handles the 'GET /v1/capacity_requests/summary?fromServiceDate={date?}&toServiceDate={date?}' endpoint
func (service *Service) EndpointGetCapacitySummary(writer http.ResponseWriter, request *http.Request) {
	var errs validation.Collector
	from := errs.Date(request, "fromServiceDate")
	to := errs.Date(request, "toServiceDate")
	if len(errs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, errs...)
		return
	}

	summary, err := service.Storage.CapacityRequests().Summary(request.Context(), from, to)
	if err != nil {
		service.writeFailure(writer, request, err)
		return
	}
	service.writer.WriteJSON(writer, summary)
}

// EndpointGetCapacityRequest handles the 'GET /v1/capacity_requests/{id}' endpoint
func (service *Service) EndpointGetCapacityRequest(writer http.ResponseWriter, request *http.Request) {
	serveRecord(service, writer, request, service.Storage.CapacityRequests().GetByID)
}

// EndpointCreateCapacityRequest handles the 'POST /v1/capacity_requests' endpoint
func (service *Service) EndpointCreateCapacityRequest(writer http.ResponseWriter, request *http.Request) {
	body, ok := decodeBody[createCapacityRequestBody](service, writer, request)
	if !ok {
		return
	}

	create := &capacity.Create{
		ServiceDate:        *body.ServiceDate,
		Zone:               body.Zone,
		WindowStart:        body.WindowStart,
		WindowEnd:          body.WindowEnd,
		RequiredVehicles:   *body.RequiredVehicles,
		TotalWeightKg:      valueOr(body.TotalWeightKg, 0),
		TotalVolumeM3:      valueOr(body.TotalVolumeM3, 0),
		CreatedBy:          body.CreatedBy,
		OnlyTargetProvider: valueOr(body.OnlyTargetProvider, false),
		ProviderID:         body.ProviderID,
	}
	if body.Status != nil {
		status, validationErr := schema.BodyEnum("status", *body.Status, capacity.Statuses, capacity.ParseStatus)
		if validationErr != nil {
			service.writer.WriteErrors(writer, http.StatusBadRequest, validationErr)
			return
		}
		create.Status = &status
	}

	obj, err := service.Storage.CapacityRequests().Create(request.Context(), create)
	serveCreated(service, writer, request, obj, err)
}

// EndpointUpdateCapacityRequestStatus handles the 'PUT /v1/capacity_requests/{id}/status' endpoint
func (service *Service) EndpointUpdateCapacityRequestStatus(writer http.ResponseWriter, request *http.Request) {
	id, ok := service.pathID(writer, request, "id")
	if !ok {
		return
	}
	body, ok := decodeBody[updateCapacityRequestStatusBody](service, writer, request)
	if !ok {
		return
	}
	status, validationErr := schema.BodyEnum("status", *body.Status, capacity.Statuses, capacity.ParseStatus)
	if validationErr != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErr)
		return
	}

	obj, err := service.Storage.CapacityRequests().UpdateStatus(request.Context(), id, status)
	if err != nil {
		service.writeFailure(writer, request, err)
		return
	}
	if obj == nil {
		service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
		return
	}
	service.writer.WriteJSON(writer, obj)
}

// EndpointDeleteCapacityRequest handles the 'DELETE /v1/capacity_requests/{id}' endpoint
func (service *Service) EndpointDeleteCapacityRequest(writer http.ResponseWriter, request *http.Request) {
	serveDelete(service, writer, request, service.Storage.CapacityRequests().Delete)
}
