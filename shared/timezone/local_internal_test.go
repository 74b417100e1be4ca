package timezone

import (
	"os"
	"path/filepath"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectLocalZone(t *testing.T) {
	dir := t.TempDir()

	timezoneFile := filepath.Join(dir, "timezone")
	require.NoError(t, os.WriteFile(timezoneFile, []byte("Asia/Tokyo\n"), 0o600))

	localtimeLink := filepath.Join(dir, "localtime")
	require.NoError(t, os.Symlink("/usr/share/zoneinfo/Europe/Berlin", localtimeLink))

	noEnv := func(string) string { return "" }
	env := func(key string) string {
		if key == "TZ" {
			return ":America/Chicago"
		}

		return ""
	}

	tests := []struct {
		name       string
		configured string
		getenv     func(string) string
		tzFile     string
		link       string
		want       string
	}{
		{name: "configured wins", configured: "Europe/London", getenv: env, tzFile: timezoneFile, link: localtimeLink, want: "Europe/London"},
		{name: "tz env next", getenv: env, tzFile: timezoneFile, link: localtimeLink, want: "America/Chicago"},
		{name: "etc timezone next", getenv: noEnv, tzFile: timezoneFile, link: localtimeLink, want: "Asia/Tokyo"},
		{name: "localtime link last", getenv: noEnv, tzFile: filepath.Join(dir, "missing"), link: localtimeLink, want: "Europe/Berlin"},
		{name: "unknown configured is skipped", configured: "Local", getenv: noEnv, tzFile: timezoneFile, link: localtimeLink, want: "Asia/Tokyo"},
		{name: "nothing found", getenv: noEnv, tzFile: filepath.Join(dir, "missing"), link: filepath.Join(dir, "missing-link"), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectLocalZone(tt.configured, tt.getenv, tt.tzFile, tt.link)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestZoneFromPath(t *testing.T) {
	assert.Equal(t, "America/Argentina/Salta", zoneFromPath("/usr/share/zoneinfo/America/Argentina/Salta"))
	assert.Equal(t, "UTC", zoneFromPath("../usr/share/zoneinfo/UTC"))
	assert.Empty(t, zoneFromPath("/etc/somewhere/else"))
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, int64(0), floorDiv(59_999, minuteMillis))
	assert.Equal(t, int64(1), floorDiv(60_000, minuteMillis))
	assert.Equal(t, int64(-1), floorDiv(-1, minuteMillis))
	assert.Equal(t, int64(-1), floorDiv(-60_000, minuteMillis))
	assert.Equal(t, int64(-2), floorDiv(-60_001, minuteMillis))
}
