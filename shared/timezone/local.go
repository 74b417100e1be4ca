package timezone

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	etcTimezone  = "/etc/timezone"
	etcLocaltime = "/etc/localtime"
)

// DetectLocalZone names the host's zone: the configured value, then TZ, then
// /etc/timezone, then the /etc/localtime link target. It returns "" when
// nothing yields a loadable IANA name.
func DetectLocalZone(configured string) string {
	return detectLocalZone(configured, os.Getenv, etcTimezone, etcLocaltime)
}

func detectLocalZone(configured string, getenv func(string) string, timezoneFile, localtimeLink string) string {
	candidates := []string{configured, strings.TrimPrefix(getenv("TZ"), ":")}

	if raw, err := os.ReadFile(timezoneFile); err == nil {
		candidates = append(candidates, strings.TrimSpace(string(raw)))
	}

	if target, err := os.Readlink(localtimeLink); err == nil {
		candidates = append(candidates, zoneFromPath(target))
	}

	for _, candidate := range candidates {
		if candidate != "" && Known(candidate) {
			return candidate
		}
	}

	return ""
}

func zoneFromPath(path string) string {
	path = filepath.ToSlash(path)

	_, after, found := strings.Cut(path, "zoneinfo/")
	if !found {
		return ""
	}

	return after
}
