package civiltime_test

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzform/infras/metrics"
	"tzform/shared/civiltime"
	"tzform/shared/timezone"
)

func newCodec(t *testing.T) *civiltime.Codec {
	t.Helper()

	resolver, err := timezone.NewResolver(timezone.NewTZDB(""), 1024, nil)
	require.NoError(t, err)

	return civiltime.NewCodec(resolver, nil)
}

func instant(t *testing.T, value string) civiltime.Instant {
	t.Helper()

	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)

	return civiltime.FromTime(parsed)
}

func TestCodec_Resolve(t *testing.T) {
	codec := newCodec(t)

	tests := []struct {
		name      string
		zone      string
		civil     string
		want      string
		wantKind  civiltime.Kind
		wantLocal string
	}{
		{
			name:      "utc identity",
			zone:      "UTC",
			civil:     "2025-01-01T10:00",
			want:      "2025-01-01T10:00:00Z",
			wantKind:  civiltime.KindExact,
			wantLocal: "2025-01-01T10:00",
		},
		{
			name:      "half hour offset",
			zone:      "Asia/Kolkata",
			civil:     "2025-06-01T09:00",
			want:      "2025-06-01T03:30:00Z",
			wantKind:  civiltime.KindExact,
			wantLocal: "2025-06-01T09:00",
		},
		{
			name:      "new york spring forward gap normalizes forward",
			zone:      "America/New_York",
			civil:     "2024-03-10T02:30",
			want:      "2024-03-10T07:30:00Z",
			wantKind:  civiltime.KindGap,
			wantLocal: "2024-03-10T03:30",
		},
		{
			name:      "new york fall back fold picks earlier occurrence",
			zone:      "America/New_York",
			civil:     "2024-11-03T01:30",
			want:      "2024-11-03T05:30:00Z",
			wantKind:  civiltime.KindFold,
			wantLocal: "2024-11-03T01:30",
		},
		{
			name:      "berlin fall back fold picks earlier occurrence",
			zone:      "Europe/Berlin",
			civil:     "2024-10-27T02:30",
			want:      "2024-10-27T00:30:00Z",
			wantKind:  civiltime.KindFold,
			wantLocal: "2024-10-27T02:30",
		},
		{
			name:      "berlin spring forward gap normalizes forward",
			zone:      "Europe/Berlin",
			civil:     "2024-03-31T02:30",
			want:      "2024-03-31T01:30:00Z",
			wantKind:  civiltime.KindGap,
			wantLocal: "2024-03-31T03:30",
		},
		{
			name:      "reading right after the gap is exact",
			zone:      "America/New_York",
			civil:     "2024-03-10T03:00",
			want:      "2024-03-10T07:00:00Z",
			wantKind:  civiltime.KindExact,
			wantLocal: "2024-03-10T03:00",
		},
		{
			name:      "reading right after the fold is exact",
			zone:      "America/New_York",
			civil:     "2024-11-03T02:00",
			want:      "2024-11-03T07:00:00Z",
			wantKind:  civiltime.KindExact,
			wantLocal: "2024-11-03T02:00",
		},
		{
			name:      "lord howe half hour fold",
			zone:      "Australia/Lord_Howe",
			civil:     "2024-04-07T01:45",
			want:      "2024-04-06T14:45:00Z",
			wantKind:  civiltime.KindFold,
			wantLocal: "2024-04-07T01:45",
		},
		{
			name:      "date line crossing",
			zone:      "Pacific/Kiritimati",
			civil:     "2025-01-01T00:00",
			want:      "2024-12-31T10:00:00Z",
			wantKind:  civiltime.KindExact,
			wantLocal: "2025-01-01T00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := codec.Resolve(civiltime.MustParse(tt.civil), tt.zone)
			require.NoError(t, err)

			assert.Equal(t, instant(t, tt.want), res.Instant)
			assert.Equal(t, tt.wantKind, res.Kind)
			assert.LessOrEqual(t, res.Iterations, 5)

			decoded, err := codec.Decode(civiltime.MustParse(tt.civil), tt.zone)
			require.NoError(t, err)
			assert.Equal(t, res.Instant, decoded)

			local, err := codec.Encode(res.Instant, tt.zone)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLocal, local.String())
		})
	}
}

func TestCodec_Encode(t *testing.T) {
	codec := newCodec(t)

	tests := []struct {
		name    string
		instant string
		zone    string
		want    string
	}{
		{name: "utc", instant: "2025-01-01T10:00:00Z", zone: "UTC", want: "2025-01-01T10:00"},
		{name: "kolkata", instant: "2025-06-01T03:30:00Z", zone: "Asia/Kolkata", want: "2025-06-01T09:00"},
		{name: "seconds are dropped", instant: "2025-06-01T03:30:59Z", zone: "Asia/Kolkata", want: "2025-06-01T09:00"},
		{name: "later fold occurrence", instant: "2024-11-03T06:30:00Z", zone: "America/New_York", want: "2024-11-03T01:30"},
		{name: "pre epoch", instant: "1969-12-31T23:59:30Z", zone: "UTC", want: "1969-12-31T23:59"},
		{name: "sydney crosses day", instant: "2024-12-31T14:00:00Z", zone: "Australia/Sydney", want: "2025-01-01T01:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Encode(instant(t, tt.instant), tt.zone)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestCodec_UnknownZone(t *testing.T) {
	codec := newCodec(t)

	_, err := codec.Encode(0, "Atlantis/Capital")
	assert.ErrorIs(t, err, timezone.ErrUnknownZone)

	_, err = codec.Decode(civiltime.MustParse("2025-01-01T10:00"), "Atlantis/Capital")
	assert.ErrorIs(t, err, timezone.ErrUnknownZone)
	assert.NotErrorIs(t, err, civiltime.ErrMalformed)

	_, err = codec.Decode(civiltime.MustParse("2025-01-01T10:00"), "Local")
	assert.ErrorIs(t, err, timezone.ErrUnknownZone)
}

func TestCodec_InvalidFields(t *testing.T) {
	codec := newCodec(t)

	_, err := codec.Decode(civiltime.FromFields(2025, time.February, 30, 10, 0), "UTC")
	assert.ErrorIs(t, err, civiltime.ErrMalformed)

	_, err = codec.Decode(civiltime.FromFields(2025, 13, 1, 10, 0), "UTC")
	assert.ErrorIs(t, err, civiltime.ErrMalformed)
}

var roundTripZones = []string{
	"UTC",
	"America/New_York",
	"America/Sao_Paulo",
	"Europe/Berlin",
	"Europe/London",
	"Asia/Kolkata",
	"Asia/Kathmandu",
	"Australia/Lord_Howe",
	"Australia/Sydney",
	"Pacific/Chatham",
	"Pacific/Apia",
}

func TestCodec_InstantRoundTrip(t *testing.T) {
	codec := newCodec(t)

	start := instant(t, "2015-01-01T00:00:00Z")
	end := instant(t, "2035-12-31T00:00:00Z")
	step := civiltime.Instant((7*time.Hour + 13*time.Minute).Milliseconds())

	for _, zone := range roundTripZones {
		t.Run(zone, func(t *testing.T) {
			for at := start; at < end; at += step {
				civil, err := codec.Encode(at, zone)
				require.NoError(t, err)

				res, err := codec.Resolve(civil, zone)
				require.NoError(t, err)

				if res.Kind == civiltime.KindFold && res.Instant < at {
					again, err := codec.Encode(res.Instant, zone)
					require.NoError(t, err)
					require.Equal(t, civil, again, "fold at %s", at)

					continue
				}

				require.Equal(t, at.Truncate(), res.Instant, "zone %s at %s", zone, at)
			}
		})
	}
}

func TestCodec_CivilRoundTrip(t *testing.T) {
	codec := newCodec(t)

	start := time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2035, time.December, 31, 0, 0, 0, 0, time.UTC)

	for _, zone := range roundTripZones {
		t.Run(zone, func(t *testing.T) {
			for at := start; at.Before(end); at = at.Add(5*time.Hour + 17*time.Minute) {
				civil := civiltime.FromFields(at.Year(), at.Month(), at.Day(), at.Hour(), at.Minute())

				res, err := codec.Resolve(civil, zone)
				require.NoError(t, err)

				got, err := codec.Encode(res.Instant, zone)
				require.NoError(t, err)

				if res.Kind == civiltime.KindGap {
					require.True(t, got.After(civil), "gap reading %s in %s must move forward, got %s", civil, zone, got)

					continue
				}

				require.Equal(t, civil, got, "zone %s", zone)
			}
		})
	}
}

func asTime(c civiltime.CivilDateTime) time.Time {
	return time.Date(c.Year, c.Month, c.Day, c.Hour, c.Minute, 0, 0, time.UTC)
}

func TestCodec_EncodeMonotone(t *testing.T) {
	codec := newCodec(t)
	minute := civiltime.Instant(time.Minute.Milliseconds())

	tests := []struct {
		name      string
		zone      string
		from      string
		to        string
		wantDrops int
	}{
		{name: "new york spring forward", zone: "America/New_York", from: "2024-03-09T00:00:00Z", to: "2024-03-12T00:00:00Z"},
		{name: "berlin spring forward", zone: "Europe/Berlin", from: "2024-03-30T00:00:00Z", to: "2024-04-02T00:00:00Z"},
		{name: "quiet summer", zone: "Asia/Kolkata", from: "2024-06-01T00:00:00Z", to: "2024-06-03T00:00:00Z"},
		{name: "new york fall back", zone: "America/New_York", from: "2024-11-02T00:00:00Z", to: "2024-11-05T00:00:00Z", wantDrops: 1},
		{name: "berlin fall back", zone: "Europe/Berlin", from: "2024-10-26T00:00:00Z", to: "2024-10-29T00:00:00Z", wantDrops: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := instant(t, tt.from), instant(t, tt.to)

			previous, err := codec.Encode(start, tt.zone)
			require.NoError(t, err)

			drops := 0

			for at := start + minute; at < end; at += minute {
				current, err := codec.Encode(at, tt.zone)
				require.NoError(t, err)

				if current.Before(previous) {
					// the clock is wound back by the fold length, less the minute that elapsed
					drops++
					assert.Equal(t, 59*time.Minute, asTime(previous).Sub(asTime(current)))
				}

				previous = current
			}

			assert.Equal(t, tt.wantDrops, drops)
		})
	}
}

func TestCodec_Pure(t *testing.T) {
	codec := newCodec(t)
	civil := civiltime.MustParse("2024-11-03T01:30")

	first, err := codec.Resolve(civil, "America/New_York")
	require.NoError(t, err)

	for range 10 {
		again, err := codec.Resolve(civil, "America/New_York")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCodec_Now(t *testing.T) {
	fixed := time.Date(2024, time.July, 1, 12, 34, 56, 0, time.UTC)
	codec := newCodec(t).WithClock(func() time.Time { return fixed })

	got, err := codec.Now("Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "2024-07-01T21:34", got.String())
}

func TestCodec_RecordsMetrics(t *testing.T) {
	resolver, err := timezone.NewResolver(timezone.NewTZDB(""), 64, nil)
	require.NoError(t, err)

	m := metrics.New(prometheus.NewRegistry())
	codec := civiltime.NewCodec(resolver, m)

	_, err = codec.Decode(civiltime.MustParse("2024-03-10T02:30"), "America/New_York")
	require.NoError(t, err)
	_, err = codec.Decode(civiltime.MustParse("2024-03-10T12:00"), "America/New_York")
	require.NoError(t, err)

	assert.InDelta(t, 1, testutil.ToFloat64(m.DecodeResolutionsTotal.WithLabelValues("gap")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.DecodeResolutionsTotal.WithLabelValues("exact")), 0)
}

type failingResolver struct{}

func (failingResolver) OffsetMinutes(string, int64) (int, error) {
	return 0, errors.New("tzdb offline")
}

func TestCodec_ResolverFailure(t *testing.T) {
	codec := civiltime.NewCodec(failingResolver{}, nil)

	_, err := codec.Encode(0, "UTC")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tzdb offline")
}
