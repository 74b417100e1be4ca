package zonedetect

//go:generate go run go.uber.org/mock/mockgen -source=./zonedetect.go -destination=./mocks/zonedetect_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"tzform/config"
	"tzform/infras/metrics"
	"tzform/infras/otel"
	"tzform/shared"
	"tzform/shared/cache"
	"tzform/shared/constant"
	"tzform/shared/logger"
)

const (
	ipPlaceholder  = "{ip}"
	maxBodyBytes   = 256
	cacheKeyPrefix = "zonedetect"

	OutcomeSuccess  = "success"
	OutcomeCached   = "cached"
	OutcomeTimeout  = "timeout"
	OutcomeError    = "error"
	OutcomeInvalid  = "invalid"
	OutcomeDisabled = "disabled"
)

// ErrDetectionUnavailable covers every way a lookup can fail. Callers treat it as advisory.
var ErrDetectionUnavailable = errors.New("zone detection unavailable")

type Detector interface {
	Detect(ctx context.Context, clientIP string) (string, error)
}

type ZoneValidator interface {
	Validate(zone string) error
}

type client struct {
	http      *http.Client
	url       string
	timeout   time.Duration
	ttl       int
	validator ZoneValidator
	cache     cache.Cache
	otel      otel.Otel
	metrics   *metrics.Metrics
	log       zerolog.Logger
}

func New(cfg *config.Config, validator ZoneValidator, c cache.Cache, ot otel.Otel, m *metrics.Metrics) Detector {
	log := logger.Named("zonedetect")

	if cfg.Zone.DetectDisabled || cfg.Zone.DetectURL == "" {
		log.Info().Msg("Zone detection disabled")

		return disabled{metrics: m}
	}

	timeout := time.Duration(cfg.Zone.DetectTimeoutSeconds) * time.Second

	return &client{
		http:      &http.Client{Timeout: timeout},
		url:       cfg.Zone.DetectURL,
		timeout:   timeout,
		ttl:       cfg.Zone.DetectCacheTTLSeconds,
		validator: validator,
		cache:     c,
		otel:      ot,
		metrics:   m,
		log:       log,
	}
}

// Detect asks the detection service for the caller's zone. The answer is
// validated against the zone database before it is returned or cached.
func (c *client) Detect(ctx context.Context, clientIP string) (zone string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".zonedetect.Detect")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	started := time.Now()
	cacheKey := shared.BuildCacheKey(cacheKeyPrefix, clientIP)

	if clientIP != "" {
		if err = c.cache.Get(ctx, cacheKey, &zone); err == nil && c.validator.Validate(zone) == nil {
			c.metrics.RecordDetection(OutcomeCached, time.Since(started))
			scope.SetAttribute(constant.OtelZoneAttributeKey, zone)

			return zone, nil
		}
	}

	zone, outcome, err := c.lookup(ctx, clientIP)
	c.metrics.RecordDetection(outcome, time.Since(started))

	if err != nil {
		c.log.Warn().Err(err).Str("outcome", outcome).Msg("zone detection failed")

		return "", err
	}

	scope.SetAttribute(constant.OtelZoneAttributeKey, zone)

	if clientIP != "" && c.ttl > 0 {
		if cerr := c.cache.Save(ctx, cacheKey, zone, c.ttl); cerr != nil {
			c.log.Warn().Err(cerr).Msg("failed to cache detected zone")
		}
	}

	return zone, nil
}

func (c *client) lookup(ctx context.Context, clientIP string) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(clientIP), nil)
	if err != nil {
		return "", OutcomeError, fmt.Errorf("%w: %w", ErrDetectionUnavailable, err)
	}

	req.Header.Set("Accept", "text/plain")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", OutcomeTimeout, fmt.Errorf("%w: %w", ErrDetectionUnavailable, err)
		}

		return "", OutcomeError, fmt.Errorf("%w: %w", ErrDetectionUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", OutcomeError, fmt.Errorf("%w: status %s", ErrDetectionUnavailable, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", OutcomeTimeout, fmt.Errorf("%w: %w", ErrDetectionUnavailable, err)
		}

		return "", OutcomeError, fmt.Errorf("%w: %w", ErrDetectionUnavailable, err)
	}

	zone := strings.TrimSpace(string(body))
	if zone == "" {
		return "", OutcomeInvalid, fmt.Errorf("%w: empty response", ErrDetectionUnavailable)
	}

	if err := c.validator.Validate(zone); err != nil {
		return "", OutcomeInvalid, fmt.Errorf("%w: %w", ErrDetectionUnavailable, err)
	}

	return zone, OutcomeSuccess, nil
}

// endpoint fills the {ip} placeholder. Without a client IP the service
// falls back to the address the request comes from.
func (c *client) endpoint(clientIP string) string {
	if !strings.Contains(c.url, ipPlaceholder) {
		return c.url
	}

	if clientIP == "" {
		return strings.ReplaceAll(strings.ReplaceAll(c.url, ipPlaceholder+"/", ""), ipPlaceholder, "")
	}

	return strings.ReplaceAll(c.url, ipPlaceholder, url.PathEscape(clientIP))
}

type disabled struct {
	metrics *metrics.Metrics
}

func (d disabled) Detect(context.Context, string) (string, error) {
	d.metrics.RecordDetection(OutcomeDisabled, 0)

	return "", fmt.Errorf("%w: disabled", ErrDetectionUnavailable)
}
