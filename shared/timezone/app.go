package timezone

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var appLocation atomic.Pointer[time.Location]

// SetAppLocation sets the location used to display record metadata.
// Unknown or empty names fall back to UTC.
func SetAppLocation(zone string) {
	if zone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		appLocation.Store(time.UTC)

		return
	}

	loc, err := defaultProvider.Location(zone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", zone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		appLocation.Store(time.UTC)

		return
	}

	appLocation.Store(loc)
	log.Info().Str("timezone", zone).Msg("Application timezone initialized")
}

// GetLocation returns the application display location.
func GetLocation() *time.Location {
	if loc := appLocation.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return t.In(GetLocation()).Format(layout)
}
