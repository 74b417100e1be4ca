package middleware

import (
	"net/http"
	"strconv"

	"tzform/shared"
	"tzform/shared/constant"
	"tzform/shared/logger"
	"tzform/transport/http/response"
)

const cacheKeyRateLimit = "limiter"

// RateLimit counts requests per client IP and user agent in a fixed window.
// The limiter lets traffic through when the cache is unavailable.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limits := a.config.App.RateLimiter

	return func(next http.Handler) http.Handler {
		if !limits.Enable {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			count, err := a.cache.Incr(r.Context(), limiterKey(r), limits.WindowSeconds)
			if err != nil {
				logger.Ctx(r.Context()).Warn().Err(err).Msg("rate limiter unavailable")
			}

			// zero means no counter: cache disabled or failing
			if err != nil || count == 0 {
				next.ServeHTTP(w, r)

				return
			}

			remaining := max(0, int64(limits.MaxRequests)-count)

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limits.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(remaining, 10))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limits.WindowSeconds))

			if count > int64(limits.MaxRequests) {
				response.WithRequestLimitExceeded(w, limits.WindowSeconds)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func limiterKey(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return shared.BuildCacheKey(cacheKeyRateLimit, shared.ClientIP(r), ua)
}
