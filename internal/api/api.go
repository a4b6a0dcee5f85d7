package api

import (
	"errors"
	"net/http"

	"github.com/cfelipe-app/Route/internal/api/logistics"
	"github.com/cfelipe-app/Route/internal/config"
	"github.com/cfelipe-app/Route/internal/metrics"
	"github.com/cfelipe-app/Route/internal/storage"
)

// Service represents the HTTP API service
type Service struct {
	Config    *config.Config
	Storage   storage.Driver
	Metrics   *metrics.Metrics
	logistics *logistics.Service
}

// Startup starts up the logistics API.
// Errors raised by the underlying HTTP server are reported to errs.
func (service *Service) Startup(errs chan<- error) {
	logisticsService := &logistics.Service{
		Config:  service.Config,
		Storage: service.Storage,
		Metrics: service.Metrics,
	}
	service.logistics = logisticsService
	go func() {
		if err := logisticsService.Startup(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()
}

// Shutdown shuts down the logistics API
func (service *Service) Shutdown() {
	if service.logistics != nil {
		service.logistics.Shutdown()
		service.logistics = nil
	}
}
