//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"tzform/config"
	"tzform/infras/kafka"
	"tzform/infras/metrics"
	"tzform/infras/otel"
	"tzform/infras/postgres"
	"tzform/infras/redis"
	"tzform/infras/zonedetect"
	formService "tzform/internal/domains/form/service"
	preferenceRepository "tzform/internal/domains/preference/repository"
	preferenceService "tzform/internal/domains/preference/service"
	formHandler "tzform/internal/handlers/form"
	preferenceHandler "tzform/internal/handlers/preference"
	"tzform/permissions"
	"tzform/shared/cache"
	"tzform/shared/civiltime"
	"tzform/shared/timezone"
	"tzform/transport/http"
	"tzform/transport/http/middleware"
	"tzform/transport/http/router"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	metrics.NewRegistry,
	wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
	wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
	metrics.New,
)

var engine = wire.NewSet(
	provideResolver,
	civiltime.NewCodec,
	wire.Bind(new(civiltime.OffsetResolver), new(*timezone.Resolver)),
	wire.Bind(new(zonedetect.ZoneValidator), new(*timezone.Resolver)),
	wire.Bind(new(formService.Zones), new(*timezone.Resolver)),
	wire.Bind(new(formService.Codec), new(*civiltime.Codec)),
	zonedetect.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
)

var preferenceDomain = wire.NewSet(
	preferenceRepository.New,
	preferenceService.New,
)

var formDomain = wire.NewSet(
	formService.New,
)

var domains = wire.NewSet(
	preferenceDomain,
	formDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	preferenceHandler.New,
	formHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		engine,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return nil, nil, nil
}
