package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"tzform/config"
	"tzform/infras/metrics"
	"tzform/infras/otel"
	"tzform/infras/zonedetect"
	"tzform/internal/domains/form/model/dto"
	prefDto "tzform/internal/domains/preference/model/dto"
	prefService "tzform/internal/domains/preference/service"
	"tzform/shared/civiltime"
	"tzform/shared/constant"
	"tzform/shared/failure"
	"tzform/shared/logger"
	"tzform/shared/timezone"
	"tzform/shared/zonecatalog"
)

// Codec is implemented by *civiltime.Codec.
type Codec interface {
	Encode(instant civiltime.Instant, zone string) (civiltime.CivilDateTime, error)
	Resolve(civil civiltime.CivilDateTime, zone string) (civiltime.Resolution, error)
	Now(zone string) (civiltime.CivilDateTime, error)
}

// Zones is implemented by *timezone.Resolver.
type Zones interface {
	Validate(zone string) error
	ListZones() ([]string, error)
}

type Form interface {
	NewSession(ctx context.Context, clientIP, localZone string) *Session
	View(ctx context.Context, req dto.ViewRequest) (dto.ViewResponse, error)
	Submit(ctx context.Context, req dto.SubmitRequest) (dto.SubmitResponse, error)
	Resubmit(ctx context.Context, id string, req dto.SubmitRequest) (dto.SubmitResponse, error)
	Edit(ctx context.Context, id string, req dto.EditRequest) (dto.EditResponse, error)
	Clock(ctx context.Context, req dto.ClockRequest, emit func(dto.ClockFrame) error) error
}

type serviceImpl struct {
	codec         Codec
	zones         Zones
	detector      zonedetect.Detector
	preferences   prefService.Preference
	otel          otel.Otel
	metrics       *metrics.Metrics
	log           zerolog.Logger
	localZone     string
	detectTimeout time.Duration
	clockInterval time.Duration
	allZones      func() []string
}

func New(
	cfg *config.Config,
	codec Codec,
	zones Zones,
	detector zonedetect.Detector,
	preferences prefService.Preference,
	otel otel.Otel,
	m *metrics.Metrics,
) Form {
	localZone := timezone.DetectLocalZone(cfg.App.Timezone)
	log := logger.Named("form")

	if localZone == "" {
		log.Warn().Msg("No local zone found, catalog starts with the network zone or the zone list")
	}

	return &serviceImpl{
		codec:         codec,
		zones:         zones,
		detector:      detector,
		preferences:   preferences,
		otel:          otel,
		metrics:       m,
		log:           log,
		localZone:     localZone,
		detectTimeout: time.Duration(cfg.Zone.DetectTimeoutSeconds) * time.Second,
		clockInterval: time.Duration(cfg.Zone.ClockIntervalMillis) * time.Millisecond,
		allZones: sync.OnceValue(func() []string {
			return zonecatalog.AllZones(zones)
		}),
	}
}

// NewSession opens a form session and starts network detection for clientIP.
// An empty localZone uses the zone of the host.
func (s *serviceImpl) NewSession(ctx context.Context, clientIP, localZone string) *Session {
	if localZone == "" {
		localZone = s.localZone
	}

	timeout := s.detectTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	return newSession(ctx, s.zones, s.codec, s.detector, timeout, s.allZones(), clientIP, localZone, s.log)
}

func (s *serviceImpl) View(ctx context.Context, req dto.ViewRequest) (res dto.ViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".form.View")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	session := s.NewSession(ctx, req.ClientIP, req.LocalZone)
	defer session.Close()

	if req.Zone != "" {
		if err = session.Select(req.Zone); err != nil {
			return res, mapEngineError(err)
		}
	}

	advisory := ""
	if derr := session.WaitDetection(ctx); derr != nil {
		advisory = "Could not detect your time zone from the network"
	}

	snap := session.Snapshot()

	now, err := s.codec.Now(snap.SelectedZone)
	if err != nil {
		return res, mapEngineError(err)
	}

	scope.SetAttribute(constant.OtelZoneAttributeKey, snap.SelectedZone)

	return dto.ViewResponse{
		Catalog:      snap.Catalog.Entries(),
		DefaultZone:  snap.DefaultZone,
		SelectedZone: snap.SelectedZone,
		DetectedZone: snap.DetectedZone,
		Advisory:     advisory,
		Now:          now,
	}, nil
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitRequest) (res dto.SubmitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".form.Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	civil, resolution, err := s.decode(req)
	if err != nil {
		return res, err
	}

	created, err := s.preferences.Create(ctx, req.ToPreferenceRequest(resolution.Instant))
	if err != nil {
		return res, fmt.Errorf("failed to save form: %w", err)
	}

	res, err = s.respond(created, req.TimeZone, civil, resolution)
	res.Message = "Preference created successfully"

	return res, err
}

func (s *serviceImpl) Resubmit(ctx context.Context, id string, req dto.SubmitRequest) (res dto.SubmitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".form.Resubmit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	civil, resolution, err := s.decode(req)
	if err != nil {
		return res, err
	}

	updated, err := s.preferences.Update(ctx, id, req.ToPreferenceRequest(resolution.Instant))
	if err != nil {
		return res, fmt.Errorf("failed to save form: %w", err)
	}

	res, err = s.respond(updated, req.TimeZone, civil, resolution)
	res.Message = "Preference updated successfully"

	return res, err
}

// Edit shows a stored record as an editable reading. The zone comes from the
// record, then the request, then the session default.
func (s *serviceImpl) Edit(ctx context.Context, id string, req dto.EditRequest) (res dto.EditResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".form.Edit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pref, err := s.preferences.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to load form: %w", err)
	}

	zone, source := "", ""

	switch {
	case pref.TimeZone != nil && s.zones.Validate(*pref.TimeZone) == nil:
		zone, source = *pref.TimeZone, dto.ZoneFromRecord
	case req.Zone != "":
		if err = s.zones.Validate(req.Zone); err != nil {
			return res, mapEngineError(err)
		}

		zone, source = req.Zone, dto.ZoneFromRequest
	default:
		session := s.NewSession(ctx, req.ClientIP, req.LocalZone)
		_ = session.WaitDetection(ctx)
		zone, source = session.Selected(), dto.ZoneFromDefault
		session.Close()
	}

	civil, err := s.codec.Encode(civiltime.FromTime(pref.DateTime), zone)
	if err != nil {
		return res, mapEngineError(err)
	}

	res.Preference.FromResponse(pref, zone, civil)
	res.ZoneSource = source

	return res, nil
}

// Clock streams the current reading once per interval until ctx ends or emit fails.
func (s *serviceImpl) Clock(ctx context.Context, req dto.ClockRequest, emit func(dto.ClockFrame) error) error {
	session := s.NewSession(ctx, req.ClientIP, req.LocalZone)
	defer session.Close()

	if req.Zone != "" {
		if err := session.Select(req.Zone); err != nil {
			return mapEngineError(err)
		}
	}

	defer s.metrics.TrackClockStream()()

	interval := s.clockInterval
	if interval <= 0 {
		interval = time.Second
	}

	return session.Tick(ctx, interval, func(zone string, now civiltime.CivilDateTime) error {
		return emit(dto.ClockFrame{Zone: zone, Now: now})
	})
}

func (s *serviceImpl) decode(req dto.SubmitRequest) (civiltime.CivilDateTime, civiltime.Resolution, error) {
	civil, err := civiltime.Parse(req.DateTime)
	if err != nil {
		return civil, civiltime.Resolution{}, mapEngineError(err)
	}

	resolution, err := s.codec.Resolve(civil, req.TimeZone)
	if err != nil {
		return civil, resolution, mapEngineError(err)
	}

	return civil, resolution, nil
}

// respond shows the saved record as the reading its instant has in zone. For
// a gap that reading differs from the one entered.
func (s *serviceImpl) respond(
	saved prefDto.PreferenceResponse,
	zone string,
	entered civiltime.CivilDateTime,
	resolution civiltime.Resolution,
) (dto.SubmitResponse, error) {
	var res dto.SubmitResponse

	stored, err := s.codec.Encode(resolution.Instant, zone)
	if err != nil {
		return res, mapEngineError(err)
	}

	res.Preference.FromResponse(saved, zone, stored)
	res.Resolution = dto.Resolution{
		Kind:     resolution.Kind,
		Advisory: advisory(resolution.Kind, zone, entered, stored),
	}

	if resolution.Kind != civiltime.KindExact {
		s.log.Info().
			Str("zone", zone).
			Str("kind", string(resolution.Kind)).
			Stringer("entered", entered).
			Stringer("stored", stored).
			Msg("ambiguous reading resolved")
	}

	return res, nil
}

func advisory(kind civiltime.Kind, zone string, entered, stored civiltime.CivilDateTime) string {
	switch kind {
	case civiltime.KindGap:
		return fmt.Sprintf("%s does not exist in %s, it was moved forward to %s", entered, zone, stored)
	case civiltime.KindFold:
		return fmt.Sprintf("%s occurs twice in %s, the earlier occurrence was used", entered, zone)
	default:
		return ""
	}
}

// mapEngineError gives engine failures their HTTP meaning.
func mapEngineError(err error) error {
	switch {
	case errors.Is(err, timezone.ErrUnknownZone):
		return failure.UnprocessableEntity(err) //nolint:wrapcheck
	case errors.Is(err, civiltime.ErrMalformed):
		return failure.BadRequest(err) //nolint:wrapcheck
	default:
		return err
	}
}
