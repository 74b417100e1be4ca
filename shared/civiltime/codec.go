package civiltime

import (
	"fmt"
	"time"

	"tzform/infras/metrics"
)

// Decode gives up on the fixed point after this many encodes; readings that
// never reproduce are inside a gap.
const maxIterations = 5

type Kind string

const (
	KindExact Kind = "exact"
	KindGap   Kind = "gap"
	KindFold  Kind = "fold"
)

// OffsetResolver is implemented by *timezone.Resolver.
type OffsetResolver interface {
	OffsetMinutes(zone string, instantMillis int64) (int, error)
}

type Resolution struct {
	Instant    Instant
	Kind       Kind
	Iterations int
}

type Codec struct {
	resolver OffsetResolver
	metrics  *metrics.Metrics
	clock    func() time.Time
}

func NewCodec(resolver OffsetResolver, m *metrics.Metrics) *Codec {
	return &Codec{
		resolver: resolver,
		metrics:  m,
		clock:    time.Now,
	}
}

// WithClock returns a copy of the codec reading "now" from clock.
func (c *Codec) WithClock(clock func() time.Time) *Codec {
	cp := *c
	cp.clock = clock

	return &cp
}

// Encode returns the reading a clock in zone shows at instant, seconds dropped.
func (c *Codec) Encode(instant Instant, zone string) (CivilDateTime, error) {
	off, err := c.offset(zone, int64(instant))
	if err != nil {
		return CivilDateTime{}, err
	}

	return civilFromMillis(int64(instant) + off), nil
}

// Decode returns the instant at which a clock in zone shows civil.
// Fold readings map to the earlier occurrence; gap readings are pushed forward
// by the length of the gap.
func (c *Codec) Decode(civil CivilDateTime, zone string) (Instant, error) {
	res, err := c.Resolve(civil, zone)
	if err != nil {
		return 0, err
	}

	return res.Instant, nil
}

// Resolve is Decode plus how the reading was resolved.
func (c *Codec) Resolve(civil CivilDateTime, zone string) (Resolution, error) {
	if !civil.Valid() {
		return Resolution{}, &MalformedError{Input: civil.String(), Reason: "field out of range"}
	}

	naive := civil.naiveMillis()
	candidate := naive

	for iteration := 1; iteration <= maxIterations; iteration++ {
		got, err := c.Encode(Instant(candidate), zone)
		if err != nil {
			return Resolution{}, err
		}

		diff := naive - got.naiveMillis()
		if diff == 0 {
			res, err := c.resolveFold(civil, zone, naive, candidate)
			if err != nil {
				return Resolution{}, err
			}

			res.Iterations = iteration
			c.metrics.RecordDecode(string(res.Kind), iteration)

			return res, nil
		}

		candidate += diff
	}

	before, err := c.offset(zone, naive-dayMillis)
	if err != nil {
		return Resolution{}, err
	}

	after, err := c.offset(zone, naive+dayMillis)
	if err != nil {
		return Resolution{}, err
	}

	res := Resolution{
		Instant:    Instant(naive - min(before, after)),
		Kind:       KindGap,
		Iterations: maxIterations,
	}
	c.metrics.RecordDecode(string(res.Kind), maxIterations)

	return res, nil
}

// resolveFold checks whether the offset a day before or after the converged
// candidate reproduces civil at a different instant.
func (c *Codec) resolveFold(civil CivilDateTime, zone string, naive, candidate int64) (Resolution, error) {
	earlierOff, err := c.offset(zone, candidate-dayMillis)
	if err != nil {
		return Resolution{}, err
	}

	if alt := naive - earlierOff; alt < candidate {
		ok, err := c.reproduces(civil, zone, alt)
		if err != nil {
			return Resolution{}, err
		}

		if ok {
			return Resolution{Instant: Instant(alt), Kind: KindFold}, nil
		}
	}

	laterOff, err := c.offset(zone, candidate+dayMillis)
	if err != nil {
		return Resolution{}, err
	}

	if alt := naive - laterOff; alt > candidate {
		ok, err := c.reproduces(civil, zone, alt)
		if err != nil {
			return Resolution{}, err
		}

		if ok {
			return Resolution{Instant: Instant(candidate), Kind: KindFold}, nil
		}
	}

	return Resolution{Instant: Instant(candidate), Kind: KindExact}, nil
}

func (c *Codec) reproduces(civil CivilDateTime, zone string, at int64) (bool, error) {
	got, err := c.Encode(Instant(at), zone)
	if err != nil {
		return false, err
	}

	return got == civil, nil
}

// Now is the reading a clock in zone shows at the codec's current time.
func (c *Codec) Now(zone string) (CivilDateTime, error) {
	return c.Encode(FromTime(c.clock()), zone)
}

// offset returns the zone offset at ms, in milliseconds.
func (c *Codec) offset(zone string, ms int64) (int64, error) {
	off, err := c.resolver.OffsetMinutes(zone, ms)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve offset for %q: %w", zone, err)
	}

	return int64(off) * minuteMillis, nil
}
