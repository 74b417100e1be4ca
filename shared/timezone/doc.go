// Package timezone is the only place that knows about zone offsets.
//
// A Provider turns IANA zone names into *time.Location values backed by the
// system tz database, and lists the zones installed under the zoneinfo tree.
// A Resolver answers "what offset does zone Z have at instant I" in whole
// minutes and memoizes answers per (zone, minute) in a bounded LRU.
//
//	provider := timezone.NewTZDB("/usr/share/zoneinfo")
//	resolver, _ := timezone.NewResolver(provider, 4096, nil)
//	off, err := resolver.OffsetMinutes("Europe/Berlin", time.Now().UnixMilli())
//
// "Local" and the empty string are never accepted as zone names; callers
// must resolve the host zone to a real name first (see DetectLocalZone).
//
// The package also keeps the application display location used for
// record metadata (Now, Format), configured via APP_TIMEZONE.
package timezone
