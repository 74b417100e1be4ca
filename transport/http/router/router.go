package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	// swagger spec
	_ "tzform/docs"
	"tzform/internal/handlers/form"
	"tzform/internal/handlers/preference"
	"tzform/transport/http/middleware"
	"tzform/transport/http/response"
)

type DomainHandlers struct {
	Preference preference.Handler
	Form       form.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	app            middleware.AppMiddleware
	auth           middleware.Auth
	gatherer       prometheus.Gatherer
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		chiMiddleware.Recoverer,
		r.app.RequestID,
		r.app.Logger,
		r.app.Tracing,
		r.app.Metrics,
		r.app.CORS(),
	)

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.WithMessage(w, http.StatusOK, "OK")
	})
	router.Handle("/metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{}))
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.app.RateLimit(), r.auth.APIKey)

		r.DomainHandlers.Preference.Router(routerGroup)
		r.DomainHandlers.Form.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.Auth, gatherer prometheus.Gatherer) Router {
	return Router{
		DomainHandlers: domainHandlers,
		app:            app,
		auth:           auth,
		gatherer:       gatherer,
	}
}
