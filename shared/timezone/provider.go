package timezone

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/hashicorp/go-multierror"
)

const (
	DefaultInfoDir = "/usr/share/zoneinfo"

	localZoneName = "Local"
)

var ErrUnknownZone = errors.New("unknown zone")

// UnknownZoneError names the zone the provider could not load.
type UnknownZoneError struct {
	Zone string
	Err  error
}

func (e *UnknownZoneError) Error() string {
	return fmt.Sprintf("unknown zone %q", e.Zone)
}

func (e *UnknownZoneError) Is(target error) bool {
	return target == ErrUnknownZone
}

func (e *UnknownZoneError) Unwrap() error {
	return e.Err
}

type Provider interface {
	Location(zone string) (*time.Location, error)
	ListZones() ([]string, error)
}

// skipped subtrees and pseudo-zones that live next to real zone files
var ignoredEntries = map[string]struct{}{
	"posix":      {},
	"right":      {},
	"posixrules": {},
	"localtime":  {},
	"Factory":    {},
	"SystemV":    {},
}

// TZDB is a Provider over the IANA database shipped with the host (or embedded via time/tzdata).
type TZDB struct {
	dir       string
	locations sync.Map
}

func NewTZDB(dir string) *TZDB {
	if dir == "" {
		dir = DefaultInfoDir
	}

	return &TZDB{dir: dir}
}

func (p *TZDB) Location(zone string) (*time.Location, error) {
	if zone == "" || zone == localZoneName {
		return nil, &UnknownZoneError{Zone: zone}
	}

	if loc, ok := p.locations.Load(zone); ok {
		return loc.(*time.Location), nil //nolint:forcetypeassert
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, &UnknownZoneError{Zone: zone, Err: err}
	}

	p.locations.Store(zone, loc)

	return loc, nil
}

// ListZones walks the zoneinfo tree and returns every loadable zone name, sorted.
// Unreadable entries are collected and returned alongside whatever was found.
func (p *TZDB) ListZones() ([]string, error) {
	if _, err := os.Stat(p.dir); err != nil {
		return nil, fmt.Errorf("failed to open zoneinfo dir: %w", err)
	}

	var (
		zones []string
		errs  *multierror.Error
	)

	walkErr := filepath.WalkDir(p.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = multierror.Append(errs, err)

			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if _, ignored := ignoredEntries[d.Name()]; ignored {
			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(p.dir, path)
		if err != nil {
			errs = multierror.Append(errs, err)

			return nil
		}

		name := filepath.ToSlash(rel)
		if !looksLikeZone(name) {
			return nil
		}

		if _, err := p.Location(name); err != nil {
			return nil //nolint:nilerr
		}

		zones = append(zones, name)

		return nil
	})
	if walkErr != nil {
		errs = multierror.Append(errs, walkErr)
	}

	slices.Sort(zones)

	return zones, errs.ErrorOrNil()
}

func looksLikeZone(name string) bool {
	if name == "" || strings.Contains(name, ".") {
		return false
	}

	return unicode.IsUpper([]rune(name)[0])
}

var defaultProvider = NewTZDB(DefaultInfoDir)

// Known reports whether zone names a loadable IANA zone.
func Known(zone string) bool {
	_, err := defaultProvider.Location(zone)

	return err == nil
}
