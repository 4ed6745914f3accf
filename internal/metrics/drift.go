// Package metrics aggregates per-run scene measurements for the headless
// runner and for tests.
package metrics

import (
	"math"

	"github.com/nkoval/orbitview/internal/scene"
)

// Metric observes the scene once per tick and reduces to a single value.
type Metric interface {
	Name() string
	Observe(bodies []scene.BodyView)
	Value() float64
	Reset()
}

// RadialDrift tracks the worst relative deviation of any body's distance
// from origin against its first observed distance. Pure rotation preserves
// radius, so this should stay near floating-point noise.
type RadialDrift struct {
	baseline map[string]float64
	max      float64
}

func NewRadialDrift() *RadialDrift {
	return &RadialDrift{baseline: make(map[string]float64)}
}

func (d *RadialDrift) Name() string { return "radial_drift" }

func (d *RadialDrift) Observe(bodies []scene.BodyView) {
	for _, b := range bodies {
		r := b.Position.Length()
		r0, ok := d.baseline[b.Name]
		if !ok {
			d.baseline[b.Name] = r
			continue
		}
		if r0 == 0 {
			continue
		}
		if drift := math.Abs(r-r0) / r0; drift > d.max {
			d.max = drift
		}
	}
}

func (d *RadialDrift) Value() float64 { return d.max }

func (d *RadialDrift) Reset() {
	d.baseline = make(map[string]float64)
	d.max = 0
}
