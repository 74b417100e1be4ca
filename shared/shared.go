package shared

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"tzform/shared/cache"
	"tzform/shared/constant"
	"tzform/shared/dto"
)

const cacheKeySeparator = ":"

// CalculateTotalPage never reports fewer than one page.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}

	return (total + limit - 1) / limit
}

// FilterByID matches a single row by its key column.
func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins non-empty parts with ":".
func BuildCacheKey(parts ...string) string {
	parts = slices.DeleteFunc(slices.Clone(parts), func(part string) bool { return part == "" })

	return strings.Join(parts, cacheKeySeparator)
}

// InvalidateCaches deletes every key under each prefix, logging instead of failing.
func InvalidateCaches(ctx context.Context, c cache.Cache, prefixes ...string) {
	for _, prefix := range prefixes {
		pattern := prefix + constant.Asterix
		if err := c.Clear(ctx, pattern); err != nil {
			log.Error().Err(err).Str("prefix", pattern).Msg("failed to invalidate cache")
		}
	}
}

// ClientIP returns the caller address, honouring X-Forwarded-For and X-Real-IP.
// Header values that do not parse as an IP are ignored.
func ClientIP(r *http.Request) string {
	first, _, _ := strings.Cut(r.Header.Get(constant.RequestHeaderForwardedFor), ",")

	for _, candidate := range []string{first, r.Header.Get(constant.RequestHeaderRealIP)} {
		if ip := net.ParseIP(strings.TrimSpace(candidate)); ip != nil {
			return ip.String()
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

func PrefixID(prefix, id string) string {
	return fmt.Sprintf("%s%s%s", prefix, cacheKeySeparator, id)
}
