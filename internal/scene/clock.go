package scene

// Time-scale bounds and the relative step applied by SpeedUp/SlowDown.
const (
	MinTimeScale  = 0.01
	MaxTimeScale  = 100.0
	TimeScaleStep = 1.5
)

// Clock owns the pause flag and the time-scale multiplier. It gates whether
// the integrator advances; the multiplier itself is applied separately by the
// integrator so pausing and speed stay orthogonal controls.
//
// Clock is not safe for concurrent use on its own; the Scene serializes all
// access through its tick lock.
type Clock struct {
	paused    bool
	timeScale float64
}

func NewClock() *Clock {
	return &Clock{timeScale: 1}
}

func (c *Clock) Pause()       { c.paused = true }
func (c *Clock) Resume()      { c.paused = false }
func (c *Clock) Toggle()      { c.paused = !c.paused }
func (c *Clock) Paused() bool { return c.paused }

func (c *Clock) TimeScale() float64 { return c.timeScale }

// Scale multiplies the current time scale by factor, clamped to
// [MinTimeScale, MaxTimeScale]. Repeated calls compound geometrically.
func (c *Clock) Scale(factor float64) {
	s := c.timeScale * factor
	if s < MinTimeScale {
		s = MinTimeScale
	}
	if s > MaxTimeScale {
		s = MaxTimeScale
	}
	c.timeScale = s
}

func (c *Clock) SpeedUp()  { c.Scale(TimeScaleStep) }
func (c *Clock) SlowDown() { c.Scale(1 / TimeScaleStep) }

// Tick converts a real elapsed interval into simulated elapsed time:
// zero while paused, the interval unchanged otherwise.
func (c *Clock) Tick(realDt float64) float64 {
	if c.paused {
		return 0
	}
	return realDt
}
