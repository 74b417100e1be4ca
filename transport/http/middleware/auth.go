package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tzform/config"
	"tzform/infras/otel"
	"tzform/permissions"
	"tzform/shared/constant"
	"tzform/shared/failure"
	"tzform/transport/http/response"
)

// Auth guards the endpoints listed in permissions.json.
type Auth interface {
	APIKey(http.Handler) http.Handler
}

type authImpl struct {
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthMiddleware(otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) Auth {
	if cfg.App.APIKey == "" {
		log.Warn().Msg("APP_API_KEY is not set, api_key endpoints are served without a key")
	}

	return &authImpl{
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// APIKey requires X-API-Key on endpoints whose permissions include api_key
// once APP_API_KEY is set.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		err := m.check(r, scope)
		scope.TraceIfError(err)
		scope.End()

		if err != nil {
			response.WithError(w, err)

			return
		}

		next.ServeHTTP(w, r)
	})
}

// check returns nil when the request may proceed.
func (m *authImpl) check(r *http.Request, scope otel.Scope) error {
	if m.permission == nil {
		return failure.ForbiddenError
	}

	path := permissionPattern(r)

	scope.SetAttributes(map[string]any{
		"middleware.type": "api_key",
		"http.path":       path,
		"http.method":     r.Method,
	})

	permission := m.permission.FindPermissions(path, r.Method)
	if m.permission.Skip || permission.Skip || !permission.Requires(permissions.APIKey) {
		return nil
	}

	// guard is off until a key is configured
	if m.cfg.App.APIKey == "" {
		return nil
	}

	key := r.Header.Get(constant.RequestHeaderAPIKey)
	if key == "" {
		return failure.Unauthorized("Missing API key")
	}

	if subtle.ConstantTimeCompare([]byte(key), []byte(m.cfg.App.APIKey)) != 1 {
		return failure.ForbiddenError
	}

	return nil
}

// permissionPattern resolves the chi pattern ("/v1/preferences/{id}") so
// permissions match templated paths. It falls back to the raw path.
func permissionPattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return r.URL.Path
	}

	if pattern := rctx.Routes.Find(chi.NewRouteContext(), r.Method, r.URL.Path); pattern != "" {
		return pattern
	}

	return r.URL.Path
}
