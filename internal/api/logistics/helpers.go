package logistics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cfelipe-app/Route/internal/api/schema"
	"github.com/cfelipe-app/Route/internal/api/validation"
	"github.com/cfelipe-app/Route/internal/offer"
	"github.com/cfelipe-app/Route/internal/query"
	"github.com/cfelipe-app/Route/internal/storage"
	"github.com/go-chi/chi/v5"
)

// statusClientClosedRequest is the non-standard status code used when a client abandoned its request
const statusClientClosedRequest = 499

var (
	errInvalidParameter = func(err error) *schema.Error {
		return &schema.Error{
			Type:    "validation.query.invalidParameter",
			Message: "A request parameter could not be applied.",
			Details: map[string]interface{}{
				"error": err.Error(),
			},
		}
	}
	errOfferUnknownRequest = &schema.Error{
		Type:    "offer.unknownCapacityRequest",
		Message: "The referenced capacity request does not exist.",
	}
	errUnknownReference = func(err error) *schema.Error {
		return &schema.Error{
			Type:    "validation.requestBody.unknownReference",
			Message: "The request body refers to a record that does not exist.",
			Details: map[string]interface{}{
				"error": err.Error(),
			},
		}
	}
	errOfferAlreadyDecided = &schema.Error{
		Type:    "offer.alreadyDecided",
		Message: "The offer was already accepted or rejected.",
	}
)

// writeFailure translates an error returned by a repository into an error response
func (service *Service) writeFailure(writer http.ResponseWriter, request *http.Request, err error) {
	switch {
	case errors.Is(err, query.ErrInvalidParameter):
		service.writer.WriteErrors(writer, http.StatusBadRequest, errInvalidParameter(err))
		return
	case errors.Is(err, storage.ErrDuplicate):
		service.writer.WriteErrors(writer, http.StatusConflict, schema.ErrDuplicate)
		return
	case errors.Is(err, storage.ErrUnknownReference):
		service.writer.WriteErrors(writer, http.StatusBadRequest, errUnknownReference(err))
		return
	case errors.Is(err, offer.ErrUnknownRequest):
		service.writer.WriteErrors(writer, http.StatusBadRequest, errOfferUnknownRequest)
		return
	case errors.Is(err, offer.ErrAlreadyDecided):
		service.writer.WriteErrors(writer, http.StatusConflict, errOfferAlreadyDecided)
		return
	}

	err = query.StorageError(request.Context(), err)
	if errors.Is(err, query.ErrCancelled) {
		requestLogger(request).Debug().Err(err).Msg("request was cancelled")
		service.writer.WriteErrors(writer, statusClientClosedRequest, schema.ErrCancelled)
		return
	}
	requestLogger(request).Error().Err(err).Msg("storage operation failed")
	service.writer.WriteErrors(writer, http.StatusInternalServerError, schema.ErrStorageUnavailable)
}

// pathID extracts a record ID out of the URL path; the route pattern guarantees it is numeric
func (service *Service) pathID(writer http.ResponseWriter, request *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(request, key), 10, 64)
	if err != nil {
		service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
		return 0, false
	}
	return id, true
}

// servePage writes a page of records or the validation errors collected while parsing the filter parameters
func servePage[T any](service *Service, writer http.ResponseWriter, request *http.Request, errs validation.Collector, paged func(ctx context.Context, req *query.Request) (*query.Page[T], error)) {
	if len(errs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, errs...)
		return
	}

	req := validation.Pagination(request, service.Config.DefaultPageSize, service.Config.MaxPageSize)
	page, err := paged(request.Context(), req)
	if err != nil {
		service.writeFailure(writer, request, err)
		return
	}
	schema.WritePage(service.writer, writer, page)
}

// serveRecord writes the record identified by the 'id' URL parameter
func serveRecord[T any](service *Service, writer http.ResponseWriter, request *http.Request, get func(ctx context.Context, id int64) (*T, error)) {
	id, ok := service.pathID(writer, request, "id")
	if !ok {
		return
	}

	obj, err := get(request.Context(), id)
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

// serveCreated writes a freshly created record
func serveCreated[T any](service *Service, writer http.ResponseWriter, request *http.Request, obj *T, err error) {
	if err != nil {
		service.writeFailure(writer, request, err)
		return
	}
	service.writer.WriteJSONCode(writer, http.StatusCreated, obj)
}

// serveDelete deletes the record identified by the 'id' URL parameter.
// Deleting a record that does not exist succeeds as well.
func serveDelete(service *Service, writer http.ResponseWriter, request *http.Request, del func(ctx context.Context, id int64) error) {
	id, ok := service.pathID(writer, request, "id")
	if !ok {
		return
	}

	if err := del(request.Context(), id); err != nil {
		service.writeFailure(writer, request, err)
		return
	}
	writer.WriteHeader(http.StatusNoContent)
}

// decodeBody decodes and validates a JSON request body; false is returned if an error response was written
func decodeBody[T any](service *Service, writer http.ResponseWriter, request *http.Request) (*T, bool) {
	body, errs, err := schema.UnmarshalBody[T](request)
	if err != nil {
		service.writer.WriteInternalError(writer, fmt.Errorf("reading request body: %w", err))
		return nil, false
	}
	if len(errs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, errs...)
		return nil, false
	}
	return body, true
}
