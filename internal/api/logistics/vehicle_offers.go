package logistics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cfelipe-app/Route/internal/api/schema"
	"github.com/cfelipe-app/Route/internal/api/validation"
	"github.com/cfelipe-app/Route/internal/offer"
	"github.com/cfelipe-app/Route/internal/query"
)

// decisionStatuses holds the statuses a decision may result in
var decisionStatuses = []offer.Status{offer.StatusAccepted, offer.StatusRejected}

type createOfferBody struct {
	CapacityRequestID *int64   `json:"capacityRequestId" required:"true" min:"1"`
	ProviderID        *int64   `json:"providerId" required:"true" min:"1"`
	VehicleID         *int64   `json:"vehicleId" required:"true" min:"1"`
	OfferedWeightKg   *float64 `json:"offeredWeightKg" min:"0"`
	OfferedVolumeM3   *float64 `json:"offeredVolumeM3" min:"0"`
	Price             *float64 `json:"price" required:"true" min:"0"`
	Currency          *string  `json:"currency"`
	Notes             *string  `json:"notes"`
	Status            *string  `json:"status"`
}

type decideOfferBody struct {
	Status    *string `json:"status" required:"true"`
	DecidedBy *string `json:"decidedBy"`
}

func parseDecisionStatus(raw string) (offer.Status, error) {
	status, err := offer.ParseStatus(raw)
	if err != nil {
		return "", err
	}
	if status != offer.StatusAccepted && status != offer.StatusRejected {
		return "", fmt.Errorf("offer status %q is not a decision", status)
	}
	return status, nil
}

// EndpointGetOffersPaged handles the 'GET /v1/vehicle_offers/paged?capacityRequestId={number?}&providerId={number?}&vehicleId={number?}&status={string?}&fromCreated={date?}&toCreated={date?}&visibleForProvider={bool?}' endpoint
func (service *Service) EndpointGetOffersPaged(writer http.ResponseWriter, request *http.Request) {
	var errs validation.Collector
	status, err := validation.QueryEnum(request, "status", offer.ParseStatus)
	errs.Add(err)
	providerID := errs.ID(request, "providerId")
	filter := &offer.Filter{
		CapacityRequestID: errs.ID(request, "capacityRequestId"),
		ProviderID:        providerID,
		VehicleID:         errs.ID(request, "vehicleId"),
		Status:            status,
		CreatedFrom:       errs.Date(request, "fromCreated"),
		CreatedTo:         errs.Date(request, "toCreated"),
		ViewerID:          viewer(&errs, request, providerID),
	}

	servePage(service, writer, request, errs, func(ctx context.Context, req *query.Request) (*query.Page[*offer.Offer], error) {
		return service.Storage.Offers().Paged(ctx, filter, req)
	})
}

// EndpointGetOffersByProvider handles the 'GET /v1/vehicle_offers/by_provider/{providerId}' endpoint
func (service *Service) EndpointGetOffersByProvider(writer http.ResponseWriter, request *http.Request) {
	providerID, ok := service.pathID(writer, request, "providerId")
	if !ok {
		return
	}
	filter := &offer.Filter{ProviderID: &providerID}

	servePage(service, writer, request, nil, func(ctx context.Context, req *query.Request) (*query.Page[*offer.Offer], error) {
		return service.Storage.Offers().Paged(ctx, filter, req)
	})
}

// EndpointGetOffer handles the 'GET /v1/vehicle_offers/{id}' endpoint
func (service *Service) EndpointGetOffer(writer http.ResponseWriter, request *http.Request) {
	serveRecord(service, writer, request, service.Storage.Offers().GetByID)
}

// EndpointCreateOffer handles the 'POST /v1/vehicle_offers' endpoint
func (service *Service) EndpointCreateOffer(writer http.ResponseWriter, request *http.Request) {
	body, ok := decodeBody[createOfferBody](service, writer, request)
	if !ok {
		return
	}

	create := &offer.Create{
		CapacityRequestID: *body.CapacityRequestID,
		ProviderID:        *body.ProviderID,
		VehicleID:         *body.VehicleID,
		OfferedWeightKg:   valueOr(body.OfferedWeightKg, 0),
		OfferedVolumeM3:   valueOr(body.OfferedVolumeM3, 0),
		Price:             *body.Price,
		Currency:          valueOr(body.Currency, ""),
		Notes:             body.Notes,
	}
	if body.Status != nil {
		status, validationErr := schema.BodyEnum("status", *body.Status, offer.Statuses, offer.ParseStatus)
		if validationErr != nil {
			service.writer.WriteErrors(writer, http.StatusBadRequest, validationErr)
			return
		}
		create.Status = &status
	}

	obj, err := service.Storage.Offers().Create(request.Context(), create)
	serveCreated(service, writer, request, obj, err)
}

// EndpointDecideOffer handles the 'PUT /v1/vehicle_offers/{id}/decide' endpoint
func (service *Service) EndpointDecideOffer(writer http.ResponseWriter, request *http.Request) {
	id, ok := service.pathID(writer, request, "id")
	if !ok {
		return
	}
	body, ok := decodeBody[decideOfferBody](service, writer, request)
	if !ok {
		return
	}
	status, validationErr := schema.BodyEnum("status", *body.Status, decisionStatuses, parseDecisionStatus)
	if validationErr != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErr)
		return
	}

	obj, err := service.Storage.Offers().Decide(request.Context(), id, &offer.Decision{
		Accept:    status == offer.StatusAccepted,
		DecidedBy: body.DecidedBy,
		At:        time.Now(),
	})
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

// EndpointDeleteOffer handles the 'DELETE /v1/vehicle_offers/{id}' endpoint
func (service *Service) EndpointDeleteOffer(writer http.ResponseWriter, request *http.Request) {
	serveDelete(service, writer, request, service.Storage.Offers().Delete)
}
