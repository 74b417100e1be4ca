package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

// APIKey marks endpoints that need the X-API-Key header.
const APIKey = "api_key"

// AnyMethod matches every HTTP method of a path.
const AnyMethod = "*"

//go:embed permissions.json
var permissionsData []byte

type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Requires reports whether the endpoint lists the given permission.
func (p Permission) Requires(permission string) bool {
	return slices.Contains(p.Permissions, permission)
}

// PermissionData is keyed by chi route pattern, not by concrete request path.
type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

func endpointKey(method, path string) string {
	return strings.ToUpper(method) + " " + path
}

// FindPermissions prefers an exact method match over an AnyMethod entry.
// Unlisted endpoints get the zero Permission.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if perm, ok := r.index[endpointKey(method, path)]; ok {
		return perm
	}

	return r.index[endpointKey(AnyMethod, path)]
}

func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}

// Parse decodes and indexes permissions. Duplicate method and path pairs are rejected.
func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, fmt.Errorf("decode permissions: %w", err)
	}

	permissions.index = make(map[string]Permission, len(permissions.Endpoints))

	for _, endpoint := range permissions.Endpoints {
		key := endpointKey(endpoint.Method, endpoint.Path)
		if _, dup := permissions.index[key]; dup {
			return nil, fmt.Errorf("duplicate permission entry %q", key)
		}

		permissions.index[key] = endpoint
	}

	return &permissions, nil
}
