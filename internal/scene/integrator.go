package scene

import (
	"log/slog"
	"math"
)

// Integrator advances every body's angular position by rotating its planar
// position about the z axis. Orbits are uniform circular motion by design;
// the rotation is exact for a fixed angular rate, so advancing by dt1 then
// dt2 matches a single advance by dt1+dt2.
type Integrator struct {
	log *slog.Logger
}

func NewIntegrator(log *slog.Logger) *Integrator {
	return &Integrator{log: log}
}

// Advance rotates each body by rate * simDt * timeScale. A zero simDt leaves
// every position untouched. A body whose update would produce a non-finite
// position is skipped for the tick and logged; the rest still advance.
func (in *Integrator) Advance(reg *Registry, simDt, timeScale float64) {
	if simDt == 0 {
		return
	}
	for _, b := range reg.bodies {
		angle := b.rate * simDt * timeScale
		sin, cos := math.Sincos(angle)
		next := Vec3{
			X: b.Position.X*cos - b.Position.Y*sin,
			Y: b.Position.X*sin + b.Position.Y*cos,
			Z: b.Position.Z,
		}
		if !next.IsFinite() {
			in.log.Warn("skipping body with non-finite update",
				"body", b.Name, "angle", angle)
			continue
		}
		b.Position = next
	}
}
