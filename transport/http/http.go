package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tzform/config"
	"tzform/shared/constant"
	"tzform/transport/http/response"
	"tzform/transport/http/router"
)

const readHeaderTimeout = 10 * time.Second

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

func (s ServerState) String() string {
	switch s {
	case ServerStateReady:
		return "ready"
	case ServerStateInGracePeriod:
		return "grace"
	case ServerStateInCleanupPeriod:
		return "cleanup"
	default:
		return "starting"
	}
}

type HTTP struct {
	Config *config.Config
	Router router.Router

	state     atomic.Int32
	mux       *chi.Mux
	server    *http.Server
	setupOnce sync.Once
	stopped   chan struct{}
}

func New(cfg *config.Config, r router.Router) *HTTP {
	return &HTTP{
		Config:  cfg,
		Router:  r,
		stopped: make(chan struct{}),
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// Serve blocks until SIGTERM has been handled and in-flight requests are done.
func (h *HTTP) Serve() {
	h.setup()
	h.setupGracefulShutdown()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-h.stopped
}

// ServeHTTP lets the service run behind another server, as in api/index.go.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()
	h.server.Handler.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.setupOnce.Do(func() {
		h.mux = chi.NewRouter()
		h.mux.Use(h.rejectWhileShuttingDown)
		h.Router.SetupRoutes(h.mux)

		h.server = &http.Server{
			Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
			Handler:           h.mux,
			ReadHeaderTimeout: readHeaderTimeout,
		}

		h.state.Store(int32(ServerStateReady))
	})
}

// rejectWhileShuttingDown answers 503 once the grace period has started, so
// load balancers drain the instance. Health checks see the same answer.
func (h *HTTP) rejectWhileShuttingDown(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch h.State() {
		case ServerStateReady:
			next.ServeHTTP(w, r)
		case ServerStateInGracePeriod:
			response.WithPreparingShutdown(w, h.Config.Server.Shutdown.GracePeriodSeconds+h.Config.Server.Shutdown.CleanupPeriodSeconds)
		default:
			response.WithUnhealthy(w)
		}
	})
}

func (h *HTTP) setupGracefulShutdown() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-signals
		signal.Stop(signals)
		h.drain(sig)
	}()
}

// drain walks the server through the grace and cleanup periods before
// shutting down. Development builds skip straight to shutdown.
func (h *HTTP) drain(sig os.Signal) {
	log.Info().Str("signal", sig.String()).Msg("Shutdown requested")

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		h.shutdown(0)

		return
	}

	periods := h.Config.Server.Shutdown

	h.enter(ServerStateInGracePeriod, periods.GracePeriodSeconds)
	time.Sleep(time.Duration(periods.GracePeriodSeconds) * time.Second)

	h.enter(ServerStateInCleanupPeriod, periods.CleanupPeriodSeconds)
	h.shutdown(time.Duration(periods.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Shutdown complete")
}

func (h *HTTP) enter(state ServerState, seconds int64) {
	h.state.Store(int32(state))
	log.Info().Str("state", state.String()).Int64("seconds", seconds).Msg("Server state changed")
}

// shutdown stops accepting connections and waits up to timeout for in-flight
// requests.
func (h *HTTP) shutdown(timeout time.Duration) {
	defer close(h.stopped)

	ctx, cancel := context.WithTimeout(context.Background(), max(timeout, time.Second))
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down HTTP server cleanly")
	}
}
