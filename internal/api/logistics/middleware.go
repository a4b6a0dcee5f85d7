package logistics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cfelipe-app/Route/internal/api/schema"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const headerRequestID = "X-Request-ID"

// MiddlewareRequestLogger assigns an ID to every request, injects a logger carrying it into the request context and
// logs the request once it was handled
func (service *Service) MiddlewareRequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requestID := request.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		writer.Header().Set(headerRequestID, requestID)

		logger := log.With().Str("request_id", requestID).Logger()
		request = request.WithContext(logger.WithContext(request.Context()))

		wrapped := middleware.NewWrapResponseWriter(writer, request.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(wrapped, request)

		logger.Debug().
			Str("method", request.Method).
			Str("path", request.URL.Path).
			Int("status", statusOf(wrapped)).
			Int("bytes", wrapped.BytesWritten()).
			Dur("took", time.Since(start)).
			Msg("handled request")
	})
}

// MiddlewareObserveListing records the outcome of a paged listing request of an entity
func (service *Service) MiddlewareObserveListing(entity string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(writer http.ResponseWriter, request *http.Request) {
			wrapped := middleware.NewWrapResponseWriter(writer, request.ProtoMajor)
			start := time.Now()
			next(wrapped, request)

			total, _ := strconv.ParseUint(wrapped.Header().Get(schema.HeaderTotalCount), 10, 64)
			service.Metrics.ObserveListing(entity, statusOf(wrapped), time.Since(start), total)
		}
	}
}

func statusOf(writer middleware.WrapResponseWriter) int {
	if status := writer.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}

func requestLogger(request *http.Request) *zerolog.Logger {
	return zerolog.Ctx(request.Context())
}
