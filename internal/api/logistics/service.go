package logistics

import (
	"net/http"

	"github.com/cfelipe-app/Route/internal/api/schema"
	"github.com/cfelipe-app/Route/internal/config"
	"github.com/cfelipe-app/Route/internal/function"
	"github.com/cfelipe-app/Route/internal/metrics"
	"github.com/cfelipe-app/Route/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

// Service represents the logistics API service
type Service struct {
	server *http.Server

	Config  *config.Config
	Storage storage.Driver
	Metrics *metrics.Metrics

	writer *schema.Writer
}

// Startup starts up the logistics API
func (service *Service) Startup() error {
	server := &http.Server{
		Addr:    service.Config.ListenAddress,
		Handler: service.Handler(),
	}
	service.server = server
	return server.ListenAndServe()
}

// Shutdown shuts down the logistics API
func (service *Service) Shutdown() {
	if service.server != nil {
		service.server.Close()
		service.server = nil
	}
}

// Handler builds the HTTP handler serving the logistics API
func (service *Service) Handler() http.Handler {
	// Create the HTTP schema writer
	service.writer = &schema.Writer{
		InternalErrorHook: func(err error) {
			log.Error().Err(err).Msg("the logistics API experienced an unexpected error")
		},
	}
	if service.Metrics == nil {
		service.Metrics = metrics.New()
	}

	// Create the HTTP router
	router := chi.NewRouter()
	router.Use(middleware.RedirectSlashes)
	router.Use(service.MiddlewareRequestLogger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: service.Config.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{schema.HeaderTotalCount, headerRequestID},
		AllowCredentials: true,
	}))
	router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
	})
	router.MethodNotAllowed(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteErrors(writer, http.StatusMethodNotAllowed, schema.ErrMethodNotAllowed)
	})

	// Register the API endpoint handlers
	service.registerEndpoints(router)
	router.Handle("/metrics", service.Metrics.Handler())

	return router
}

func (service *Service) registerEndpoints(router chi.Router) {
	// Register the provider endpoints
	router.Get("/v1/providers/paged", function.Nest[http.HandlerFunc](
		service.EndpointGetProvidersPaged,
		service.MiddlewareObserveListing("providers"),
	))
	router.Get("/v1/providers/{id:[0-9]+}", service.EndpointGetProvider)
	router.Post("/v1/providers", service.EndpointCreateProvider)
	router.Delete("/v1/providers/{id:[0-9]+}", service.EndpointDeleteProvider)

	// Register the vehicle endpoints
	router.Get("/v1/vehicles/paged", function.Nest[http.HandlerFunc](
		service.EndpointGetVehiclesPaged,
		service.MiddlewareObserveListing("vehicles"),
	))
	router.Get("/v1/vehicles/{id:[0-9]+}", service.EndpointGetVehicle)
	router.Post("/v1/vehicles", service.EndpointCreateVehicle)
	router.Delete("/v1/vehicles/{id:[0-9]+}", service.EndpointDeleteVehicle)

	// Register the driver endpoints
	router.Get("/v1/drivers/paged", function.Nest[http.HandlerFunc](
		service.EndpointGetDriversPaged,
		service.MiddlewareObserveListing("drivers"),
	))
	router.Get("/v1/drivers/{id:[0-9]+}", service.EndpointGetDriver)
	router.Post("/v1/drivers", service.EndpointCreateDriver)
	router.Delete("/v1/drivers/{id:[0-9]+}", service.EndpointDeleteDriver)

	// Register the order endpoints
	router.Get("/v1/orders/paged", function.Nest[http.HandlerFunc](
		service.EndpointGetOrdersPaged,
		service.MiddlewareObserveListing("orders"),
	))
	router.Get("/v1/orders/{id:[0-9]+}", service.EndpointGetOrder)
	router.Post("/v1/orders", service.EndpointCreateOrder)
	router.Delete("/v1/orders/{id:[0-9]+}", service.EndpointDeleteOrder)

	// Register the capacity request endpoints
	router.Get("/v1/capacity_requests/paged", function.Nest[http.HandlerFunc](
		service.EndpointGetCapacityRequestsPaged,
		service.MiddlewareObserveListing("capacity_requests"),
	))
	router.Get("/v1/capacity_requests/summary", service.EndpointGetCapacitySummary)
	router.Get("/v1/capacity_requests/{id:[0-9]+}", service.EndpointGetCapacityRequest)
	router.Post("/v1/capacity_requests", service.EndpointCreateCapacityRequest)
	router.Put("/v1/capacity_requests/{id:[0-9]+}/status", service.EndpointUpdateCapacityRequestStatus)
	router.Delete("/v1/capacity_requests/{id:[0-9]+}", service.EndpointDeleteCapacityRequest)

	// Register the vehicle offer endpoints
	router.Get("/v1/vehicle_offers/paged", function.Nest[http.HandlerFunc](
		service.EndpointGetOffersPaged,
		service.MiddlewareObserveListing("vehicle_offers"),
	))
	router.Get("/v1/vehicle_offers/by_provider/{providerId:[0-9]+}", function.Nest[http.HandlerFunc](
		service.EndpointGetOffersByProvider,
		service.MiddlewareObserveListing("vehicle_offers"),
	))
	router.Get("/v1/vehicle_offers/{id:[0-9]+}", service.EndpointGetOffer)
	router.Post("/v1/vehicle_offers", service.EndpointCreateOffer)
	router.Put("/v1/vehicle_offers/{id:[0-9]+}/decide", service.EndpointDecideOffer)
	router.Delete("/v1/vehicle_offers/{id:[0-9]+}", service.EndpointDeleteOffer)
}
