// Package zonecatalog builds the ordered list of zones offered to a user and
// picks the default among them.
package zonecatalog

import (
	"slices"

	"github.com/rs/zerolog/log"

	"tzform/shared/timezone"
)

type Source string

const (
	SourceNetwork Source = "network-detected"
	SourceLocal   Source = "local-environment"
	SourceCatalog Source = "catalog"
)

type Entry struct {
	Zone   string `json:"zone"`
	Source Source `json:"source"`
}

// FallbackZones is offered when the provider lists nothing. The first eight
// are the long-standing defaults; the rest cover one zone per major offset band.
var FallbackZones = []string{
	"UTC",
	"Europe/London",
	"Europe/Berlin",
	"Asia/Tokyo",
	"Asia/Kolkata",
	"America/New_York",
	"America/Los_Angeles",
	"Australia/Sydney",
	"Pacific/Honolulu",
	"America/Anchorage",
	"America/Denver",
	"America/Chicago",
	"America/Halifax",
	"America/Sao_Paulo",
	"Atlantic/South_Georgia",
	"Atlantic/Azores",
	"Africa/Cairo",
	"Europe/Moscow",
	"Asia/Dubai",
	"Asia/Karachi",
	"Asia/Dhaka",
	"Asia/Bangkok",
	"Asia/Shanghai",
	"Pacific/Noumea",
	"Pacific/Auckland",
}

// Validator reports an error for zones the resolver does not know.
type Validator interface {
	Validate(zone string) error
}

// Catalog is immutable once built.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// Build orders the network zone, then the local zone, then allZones, keeping
// the first occurrence of each. Network and local zones that fail validation
// are left out. An empty allZones is replaced by FallbackZones.
func Build(validator Validator, networkZone, localZone string, allZones []string) Catalog {
	catalog := Catalog{index: map[string]int{}}

	if valid(validator, networkZone, SourceNetwork) {
		catalog.add(networkZone, SourceNetwork)
	}

	if valid(validator, localZone, SourceLocal) {
		catalog.add(localZone, SourceLocal)
	}

	if len(allZones) == 0 {
		allZones = FallbackZones
	}

	for _, zone := range allZones {
		catalog.add(zone, SourceCatalog)
	}

	return catalog
}

func valid(validator Validator, zone string, source Source) bool {
	if zone == "" {
		return false
	}

	if err := validator.Validate(zone); err != nil {
		log.Warn().Err(err).Str("zone", zone).Str("source", string(source)).Msg("dropping unknown zone from catalog")

		return false
	}

	return true
}

func (c *Catalog) add(zone string, source Source) {
	if zone == "" {
		return
	}

	if _, seen := c.index[zone]; seen {
		return
	}

	c.index[zone] = len(c.entries)
	c.entries = append(c.entries, Entry{Zone: zone, Source: source})
}

func (c Catalog) Entries() []Entry {
	return slices.Clone(c.entries)
}

func (c Catalog) Zones() []string {
	zones := make([]string, len(c.entries))
	for i, entry := range c.entries {
		zones[i] = entry.Zone
	}

	return zones
}

func (c Catalog) Contains(zone string) bool {
	_, ok := c.index[zone]

	return ok
}

func (c Catalog) Len() int {
	return len(c.entries)
}

// DefaultZone prefers the network zone, then the local zone, then the head of
// the catalog. It returns "" only for an empty catalog.
func DefaultZone(catalog Catalog, networkZone, localZone string) string {
	switch {
	case networkZone != "" && catalog.Contains(networkZone):
		return networkZone
	case localZone != "" && catalog.Contains(localZone):
		return localZone
	case catalog.Len() > 0:
		return catalog.entries[0].Zone
	default:
		return ""
	}
}

// Lister is implemented by *timezone.Resolver.
type Lister interface {
	ListZones() ([]string, error)
}

// AllZones lists installed zones, falling back to FallbackZones when the
// zoneinfo tree is missing or empty.
func AllZones(lister Lister) []string {
	zones, err := lister.ListZones()
	if err != nil {
		log.Warn().Err(err).Msg("zoneinfo listing incomplete")
	}

	if len(zones) == 0 {
		return slices.Clone(FallbackZones)
	}

	return zones
}

var _ Validator = (*timezone.Resolver)(nil)
