package di

import (
	"tzform/config"
	"tzform/infras/metrics"
	"tzform/shared/timezone"
	"tzform/shared/validator"
)

// provideResolver memoizes offsets from the zoneinfo tree in ZONE_INFO_DIR and
// backs the zoneid validation rule with it.
func provideResolver(cfg *config.Config, m *metrics.Metrics) (*timezone.Resolver, error) {
	resolver, err := timezone.NewResolver(timezone.NewTZDB(cfg.Zone.InfoDir), cfg.Zone.ResolverCacheSize, m)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	validator.UseZones(resolver)

	return resolver, nil
}
