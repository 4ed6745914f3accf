package scene

import (
	"fmt"
	"math"
)

// SizeClass buckets bodies by size for rendering.
type SizeClass int

const (
	Small SizeClass = iota
	Medium
	Large
)

// Size thresholds between classes, in feed units.
const (
	mediumThreshold = 100
	largeThreshold  = 500
)

func (c SizeClass) String() string {
	switch c {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	}
	return "unknown"
}

// classify maps a body size onto a SizeClass.
func classify(size float64) SizeClass {
	switch {
	case size >= largeThreshold:
		return Large
	case size >= mediumThreshold:
		return Medium
	default:
		return Small
	}
}

// Metadata holds raw source fields carried along for display (for example a
// close-approach velocity). The engine never interprets it beyond lookup.
type Metadata map[string]any

// MetaVelocityKPS is the metadata key for close-approach velocity in km/s.
const MetaVelocityKPS = "velocity_kps"

// orbitSamples is the number of points generated per orbit circle.
const orbitSamples = 96

// Body is one orbiting entity. Position is mutated exclusively by the
// integrator during a tick; every other component reads copies via ViewState.
type Body struct {
	Name     string
	Radius   float64
	Distance float64
	Period   float64
	Position Vec3
	Class    SizeClass
	Meta     Metadata

	rate  float64 // angular rate, 2π/Period
	orbit []Vec3  // sample points on the orbit circle, generated once
	trail []Vec3  // bounded history of past positions
}

// NewBody validates a body record and derives the angular rate and orbit
// geometry. Zero or negative radius, distance or period is rejected with
// ErrInvalidBody so NaN/Inf can never enter the update loop.
func NewBody(name string, radius, distance, period float64, meta Metadata) (*Body, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidBody)
	}
	for field, v := range map[string]float64{
		"radius":   radius,
		"distance": distance,
		"period":   period,
	} {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s=%v for %q", ErrInvalidBody, field, v, name)
		}
	}

	b := &Body{
		Name:     name,
		Radius:   radius,
		Distance: distance,
		Period:   period,
		Position: Vec3{X: distance},
		Class:    classify(radius),
		Meta:     meta,
		rate:     2 * math.Pi / period,
	}
	b.orbit = make([]Vec3, orbitSamples)
	for i := range b.orbit {
		a := float64(i) * 2 * math.Pi / orbitSamples
		b.orbit[i] = Vec3{X: distance * math.Cos(a), Y: distance * math.Sin(a)}
	}
	return b, nil
}

// AngularRate returns the per-time-unit rotation rate derived from Period.
func (b *Body) AngularRate() float64 { return b.rate }

// OrbitPoints returns the precomputed orbit circle. The slice is shared and
// must not be modified.
func (b *Body) OrbitPoints() []Vec3 { return b.orbit }

// Trail returns the recorded past positions, oldest first. The slice is
// shared and must not be modified.
func (b *Body) Trail() []Vec3 { return b.trail }

func (b *Body) appendTrail(p Vec3, limit int) {
	if limit <= 0 {
		return
	}
	b.trail = append(b.trail, p)
	if len(b.trail) > limit {
		b.trail = b.trail[len(b.trail)-limit:]
	}
}

// velocityKPS extracts the close-approach velocity from metadata. A missing
// or malformed field yields ErrInvalidMetadata; display code substitutes a
// "not available" marker rather than propagating the error.
func (b *Body) velocityKPS() (float64, error) {
	raw, ok := b.Meta[MetaVelocityKPS]
	if !ok {
		return 0, fmt.Errorf("%w: no %s for %q", ErrInvalidMetadata, MetaVelocityKPS, b.Name)
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	}
	return 0, fmt.Errorf("%w: %s has type %T for %q", ErrInvalidMetadata, MetaVelocityKPS, raw, b.Name)
}
