package timezone_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzform/shared/timezone"
)

func TestTZDB_Location(t *testing.T) {
	provider := timezone.NewTZDB("")

	tests := []struct {
		name    string
		zone    string
		wantErr bool
	}{
		{name: "utc", zone: "UTC"},
		{name: "region zone", zone: "America/New_York"},
		{name: "etc zone", zone: "Etc/GMT+5"},
		{name: "empty name", zone: "", wantErr: true},
		{name: "host local is not a zone", zone: "Local", wantErr: true},
		{name: "made up", zone: "Mars/Olympus_Mons", wantErr: true},
		{name: "path traversal", zone: "../../etc/passwd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := provider.Location(tt.zone)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, timezone.ErrUnknownZone)

				var unknown *timezone.UnknownZoneError
				require.True(t, errors.As(err, &unknown))
				assert.Equal(t, tt.zone, unknown.Zone)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.zone, loc.String())
		})
	}
}

func TestTZDB_LocationIsCached(t *testing.T) {
	provider := timezone.NewTZDB("")

	first, err := provider.Location("Asia/Tokyo")
	require.NoError(t, err)

	second, err := provider.Location("Asia/Tokyo")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestTZDB_ListZones(t *testing.T) {
	dir := t.TempDir()

	files := []string{
		"Europe/Berlin",
		"America/Argentina/Buenos_Aires",
		"UTC",
		"posix/Europe/Berlin",
		"right/UTC",
		"posixrules",
		"zone.tab",
		"iso3166.tab",
		"leapseconds",
		"Factory",
		"Not/A_Real_Zone",
	}

	for _, name := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("TZif"), 0o600))
	}

	zones, err := timezone.NewTZDB(dir).ListZones()
	require.NoError(t, err)

	assert.Equal(t, []string{"America/Argentina/Buenos_Aires", "Europe/Berlin", "UTC"}, zones)
}

func TestTZDB_ListZonesMissingDir(t *testing.T) {
	zones, err := timezone.NewTZDB(filepath.Join(t.TempDir(), "missing")).ListZones()

	require.Error(t, err)
	assert.Empty(t, zones)
}

func TestKnown(t *testing.T) {
	assert.True(t, timezone.Known("Europe/London"))
	assert.False(t, timezone.Known("Local"))
	assert.False(t, timezone.Known(""))
	assert.False(t, timezone.Known("Europe/Atlantis"))
}
