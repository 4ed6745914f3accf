package scene

import (
	"fmt"
	"strings"
)

// NotAvailable marks optional display fields the feed did not provide.
const NotAvailable = "not available"

// BodyInfo is the display-ready snapshot exposed to info panels.
type BodyInfo struct {
	Name     string
	Radius   float64
	Distance float64 // current distance from the origin
	Period   float64
	Class    SizeClass
	Velocity string // formatted km/s, or NotAvailable
}

// Info returns the display snapshot for a body by name.
func (s *Scene) Info(name string) (BodyInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, err := s.reg.Find(name)
	if err != nil {
		return BodyInfo{}, err
	}

	velocity := NotAvailable
	if v, err := b.velocityKPS(); err == nil {
		velocity = fmt.Sprintf("%.2f km/s", v)
	}

	return BodyInfo{
		Name:     b.Name,
		Radius:   b.Radius,
		Distance: b.Position.Length(),
		Period:   b.Period,
		Class:    b.Class,
		Velocity: velocity,
	}, nil
}

// Text renders the snapshot as the multi-line panel text.
func (i BodyInfo) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n", i.Name, i.Class)
	fmt.Fprintf(&sb, "radius:    %.1f\n", i.Radius)
	fmt.Fprintf(&sb, "distance:  %.1f\n", i.Distance)
	fmt.Fprintf(&sb, "period:    %.1f\n", i.Period)
	fmt.Fprintf(&sb, "velocity:  %s", i.Velocity)
	return sb.String()
}
