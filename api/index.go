package handler

import (
	"net/http"
	"sync"
	_ "time/tzdata"

	"github.com/rs/zerolog/log"

	"tzform/config"
	"tzform/di"
	"tzform/shared/logger"
	tzHTTP "tzform/transport/http"
)

var (
	service     *tzHTTP.HTTP
	serviceErr  error
	serviceOnce sync.Once
)

// Handler serves the API from a serverless function. The service is built on
// the first request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	serviceOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		service, _, serviceErr = di.InitializeService()
		if serviceErr != nil {
			log.Error().Err(serviceErr).Msg("Failed to initialize service")
		}
	})

	if serviceErr != nil {
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)

		return
	}

	service.ServeHTTP(w, r)
}
