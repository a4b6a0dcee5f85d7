package logistics

import (
	"context"
	"net/http"
	"time"

	"github.com/cfelipe-app/Route/internal/api/schema"
	"github.com/cfelipe-app/Route/internal/api/validation"
	"github.com/cfelipe-app/Route/internal/order"
	"github.com/cfelipe-app/Route/internal/query"
)

type createOrderBody struct {
	ExternalOrderNo *string    `json:"externalOrderNo" required:"true"`
	CustomerName    *string    `json:"customerName" required:"true"`
	CustomerTaxID   *string    `json:"customerTaxId"`
	Address         *string    `json:"address" required:"true"`
	District        *string    `json:"district"`
	Lat             *float64   `json:"lat" min:"-90" max:"90"`
	Lng             *float64   `json:"lng" min:"-180" max:"180"`
	WeightKg        *float64   `json:"weightKg" min:"0"`
	VolumeM3        *float64   `json:"volumeM3" min:"0"`
	Amount          *float64   `json:"amount" min:"0"`
	Status          *string    `json:"status"`
	ScheduledAt     *time.Time `json:"scheduledAt"`
}

// EndpointGetOrdersPaged handles the 'GET /v1/orders/paged?status={string?}&fromCreated={date?}&toCreated={date?}&fromScheduled={date?}&toScheduled={date?}' endpoint
func (service *Service) EndpointGetOrdersPaged(writer http.ResponseWriter, request *http.Request) {
	var errs validation.Collector
	status, err := validation.QueryEnum(request, "status", order.ParseStatus)
	errs.Add(err)
	filter := &order.Filter{
		Status:        status,
		CreatedFrom:   errs.Date(request, "fromCreated"),
		CreatedTo:     errs.Date(request, "toCreated"),
		ScheduledFrom: errs.Date(request, "fromScheduled"),
		ScheduledTo:   errs.Date(request, "toScheduled"),
	}

	servePage(service, writer, request, errs, func(ctx context.Context, req *query.Request) (*query.Page[*order.Order], error) {
		return service.Storage.Orders().Paged(ctx, filter, req)
	})
}

// EndpointGetOrder handles the 'GET /v1/orders/{id}' endpoint
func (service *Service) EndpointGetOrder(writer http.ResponseWriter, request *http.Request) {
	serveRecord(service, writer, request, service.Storage.Orders().GetByID)
}

// EndpointCreateOrder handles the 'POST /v1/orders' endpoint
func (service *Service) EndpointCreateOrder(writer http.ResponseWriter, request *http.Request) {
	body, ok := decodeBody[createOrderBody](service, writer, request)
	if !ok {
		return
	}

	create := &order.Create{
		ExternalOrderNo: *body.ExternalOrderNo,
		CustomerName:    *body.CustomerName,
		CustomerTaxID:   body.CustomerTaxID,
		Address:         *body.Address,
		District:        body.District,
		Lat:             body.Lat,
		Lng:             body.Lng,
		WeightKg:        valueOr(body.WeightKg, 0),
		VolumeM3:        valueOr(body.VolumeM3, 0),
		Amount:          valueOr(body.Amount, 0),
		ScheduledAt:     body.ScheduledAt,
	}
	if body.Status != nil {
		status, validationErr := schema.BodyEnum("status", *body.Status, order.Statuses, order.ParseStatus)
		if validationErr != nil {
			service.writer.WriteErrors(writer, http.StatusBadRequest, validationErr)
			return
		}
		create.Status = &status
	}

	obj, err := service.Storage.Orders().Create(request.Context(), create)
	serveCreated(service, writer, request, obj, err)
}

// EndpointDeleteOrder handles the 'DELETE /v1/orders/{id}' endpoint
func (service *Service) EndpointDeleteOrder(writer http.ResponseWriter, request *http.Request) {
	serveDelete(service, writer, request, service.Storage.Orders().Delete)
}
