package timezone

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"tzform/infras/metrics"
)

const (
	DefaultResolverCacheSize = 4096

	minuteMillis     = int64(60_000)
	secondsPerMinute = 60
)

type memoKey struct {
	zone   string
	minute int64
}

// Resolver maps (zone, instant) to the zone's UTC offset in minutes.
// Answers never change within a process, so they are memoized.
type Resolver struct {
	provider Provider
	memo     *lru.Cache[memoKey, int]
	metrics  *metrics.Metrics
}

func NewResolver(provider Provider, size int, m *metrics.Metrics) (*Resolver, error) {
	if size <= 0 {
		size = DefaultResolverCacheSize
	}

	memo, err := lru.New[memoKey, int](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create resolver cache: %w", err)
	}

	return &Resolver{
		provider: provider,
		memo:     memo,
		metrics:  m,
	}, nil
}

// OffsetMinutes returns the offset east of UTC that zone observes at instantMillis.
func (r *Resolver) OffsetMinutes(zone string, instantMillis int64) (int, error) {
	key := memoKey{zone: zone, minute: floorDiv(instantMillis, minuteMillis)}

	if off, ok := r.memo.Get(key); ok {
		r.metrics.RecordResolverLookup(true)

		return off, nil
	}

	loc, err := r.provider.Location(zone)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	_, seconds := time.UnixMilli(instantMillis).In(loc).Zone()
	off := seconds / secondsPerMinute

	r.memo.Add(key, off)
	r.metrics.RecordResolverLookup(false)

	return off, nil
}

// Validate returns an *UnknownZoneError when zone cannot be resolved.
func (r *Resolver) Validate(zone string) error {
	_, err := r.provider.Location(zone)

	return err //nolint:wrapcheck
}

// ListZones exposes the provider's installed zones.
func (r *Resolver) ListZones() ([]string, error) {
	return r.provider.ListZones() //nolint:wrapcheck
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
