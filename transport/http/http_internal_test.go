package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzform/config"
	"tzform/infras/metrics"
	otelMocks "tzform/infras/otel/mocks"
	"tzform/permissions"
	"tzform/shared/constant"
	"tzform/transport/http/middleware"
	"tzform/transport/http/router"
)

func newServer(t *testing.T) *HTTP {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Port = "0"

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	ot := otelMocks.NewOtel()

	r := router.New(
		router.DomainHandlers{},
		middleware.NewAppMiddleware(ot, cfg, nil, m),
		middleware.NewAuthMiddleware(ot, permissions.Get(), cfg),
		reg,
	)

	server := New(cfg, r)
	server.setup()

	return server
}

func get(server *HTTP, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestHTTP_ShutdownStates(t *testing.T) {
	server := newServer(t)

	tests := []struct {
		state       ServerState
		wantCode    int
		wantMessage string
	}{
		{state: ServerStateReady, wantCode: http.StatusOK, wantMessage: "OK"},
		{state: ServerStateInGracePeriod, wantCode: http.StatusServiceUnavailable, wantMessage: constant.ResponseErrorPrepareShutdown},
		{state: ServerStateInCleanupPeriod, wantCode: http.StatusServiceUnavailable, wantMessage: constant.ResponseErrorUnhealthy},
	}

	for _, tt := range tests {
		server.state.Store(int32(tt.state))

		rec := get(server, "/health")

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		assert.Equal(t, tt.wantCode, rec.Code)
		assert.Equal(t, tt.wantMessage, body["message"])
	}
}

func TestHTTP_Metrics(t *testing.T) {
	server := newServer(t)

	get(server, "/health")

	rec := get(server, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `tzform_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestHTTP_RequestID(t *testing.T) {
	server := newServer(t)

	rec := get(server, "/health")

	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
}

func TestHTTP_NotFound(t *testing.T) {
	server := newServer(t)

	assert.Equal(t, http.StatusNotFound, get(server, "/v2/nothing").Code)
}

func TestServerState_String(t *testing.T) {
	assert.Equal(t, "ready", ServerStateReady.String())
	assert.Equal(t, "grace", ServerStateInGracePeriod.String())
	assert.Equal(t, "cleanup", ServerStateInCleanupPeriod.String())
	assert.Equal(t, "starting", ServerState(0).String())
}

func TestHTTP_DrainInDevelopment(t *testing.T) {
	server := newServer(t)
	server.Config.Server.Env = constant.ServerEnvDevelopment

	server.drain(os.Interrupt)

	select {
	case <-server.stopped:
	default:
		t.Fatal("server did not stop")
	}

	assert.Equal(t, ServerStateReady, server.State())
}

func TestHTTP_DrainWalksStates(t *testing.T) {
	server := newServer(t)
	server.Config.Server.Env = "production"

	server.drain(os.Interrupt)

	<-server.stopped
	assert.Equal(t, ServerStateInCleanupPeriod, server.State())
}
