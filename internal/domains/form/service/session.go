package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"tzform/infras/zonedetect"
	"tzform/shared/civiltime"
	"tzform/shared/zonecatalog"
)

var ErrSessionClosed = errors.New("form session closed")

// Session is one open form. It owns the zone catalog, the selected zone and
// at most one outstanding network detection.
type Session struct {
	validator zonecatalog.Validator
	codec     Codec
	allZones  []string
	localZone string
	log       zerolog.Logger

	mu          sync.Mutex
	catalog     zonecatalog.Catalog
	networkZone string
	selected    string
	explicit    bool
	detectDone  bool
	detectErr   error
	closed      bool

	detectCtx context.Context
	cancel    context.CancelFunc
	detected  chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// Snapshot is a consistent view of a session.
type Snapshot struct {
	Catalog      zonecatalog.Catalog
	DefaultZone  string
	SelectedZone string
	DetectedZone string
	DetectErr    error
}

func newSession(
	ctx context.Context,
	validator zonecatalog.Validator,
	codec Codec,
	detector zonedetect.Detector,
	timeout time.Duration,
	allZones []string,
	clientIP, localZone string,
	log zerolog.Logger,
) *Session {
	s := &Session{
		validator: validator,
		codec:     codec,
		allZones:  allZones,
		localZone: localZone,
		log:       log,
		detected:  make(chan struct{}),
		done:      make(chan struct{}),
	}

	s.catalog = zonecatalog.Build(validator, "", localZone, allZones)
	s.selected = zonecatalog.DefaultZone(s.catalog, "", localZone)
	s.detectCtx, s.cancel = context.WithTimeout(ctx, timeout)

	go func() {
		defer close(s.detected)

		zone, err := detector.Detect(s.detectCtx, clientIP)
		s.finishDetection(zone, err)
	}()

	return s
}

// finishDetection applies the first detection outcome and ignores the rest.
// Results arriving after the deadline or after Close count as unavailable.
func (s *Session) finishDetection(zone string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.detectDone {
		return
	}

	s.detectDone = true

	if s.closed {
		s.detectErr = ErrSessionClosed

		return
	}

	if err == nil {
		err = s.detectCtx.Err()
	}

	if err != nil {
		if !errors.Is(err, zonedetect.ErrDetectionUnavailable) {
			err = fmt.Errorf("%w: %w", zonedetect.ErrDetectionUnavailable, err)
		}

		s.detectErr = err
		s.log.Debug().Err(err).Msg("network zone unavailable")

		return
	}

	s.networkZone = zone
	s.catalog = zonecatalog.Build(s.validator, zone, s.localZone, s.allZones)

	if !s.explicit {
		s.selected = zonecatalog.DefaultZone(s.catalog, zone, s.localZone)
	}
}

// WaitDetection blocks until detection settles, the detection deadline passes
// or ctx ends. It returns the detection error, if any.
func (s *Session) WaitDetection(ctx context.Context) error {
	select {
	case <-s.detected:
	case <-s.detectCtx.Done():
		s.finishDetection("", s.detectCtx.Err())
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.detectErr
}

// Select pins the selected zone. Later detections still extend the catalog but
// never move the selection.
func (s *Session) Select(zone string) error {
	if err := s.validator.Validate(zone); err != nil {
		return err //nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}

	s.selected = zone
	s.explicit = true

	return nil
}

func (s *Session) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selected
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Catalog:      s.catalog,
		DefaultZone:  zonecatalog.DefaultZone(s.catalog, s.networkZone, s.localZone),
		SelectedZone: s.selected,
		DetectedZone: s.networkZone,
		DetectErr:    s.detectErr,
	}
}

// Now reads the clock in the selected zone.
func (s *Session) Now() (string, civiltime.CivilDateTime, error) {
	zone := s.Selected()

	now, err := s.codec.Now(zone)
	if err != nil {
		return zone, civiltime.CivilDateTime{}, err //nolint:wrapcheck
	}

	return zone, now, nil
}

// Tick calls fn with the current reading right away and then every interval,
// until ctx ends or the session is closed. It returns fn's first error.
func (s *Session) Tick(ctx context.Context, interval time.Duration, fn func(zone string, now civiltime.CivilDateTime) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.done:
			return nil
		default:
		}

		zone, now, err := s.Now()
		if err != nil {
			return err
		}

		if err := fn(zone, now); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-s.done:
			return nil
		case <-ticker.C:
		}
	}
}

// Close cancels detection and stops the ticker. It is safe to call twice.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()

		s.cancel()
		close(s.done)
	})
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}
